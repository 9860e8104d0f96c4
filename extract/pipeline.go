package extract

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/leadprobe/leadprobe/contact"
	"github.com/leadprobe/leadprobe/log"
	"github.com/leadprobe/leadprobe/validate"
)

// Pipeline runs every extraction strategy over one set of page artifacts and
// joins the results. Strategies are independent, side-effect-free
// transformations, so they run concurrently and join in any arrival order.
// A failing strategy contributes an empty bundle and does not cancel its
// siblings.
type Pipeline struct {
	log        zerolog.Logger
	extractors []Extractor

	mu        sync.Mutex
	onFailure func(strategy string, err error)
}

// NewPipeline creates a pipeline over the given strategies, or the default
// five when none are given.
func NewPipeline(extractors ...Extractor) *Pipeline {
	if len(extractors) == 0 {
		extractors = Default()
	}

	return &Pipeline{
		log:        log.NewLogger("extract"),
		extractors: extractors,
	}
}

// OnFailure registers a hook invoked once per failed strategy, in addition
// to the warning log. The hook is serialized across strategies.
func (p *Pipeline) OnFailure(hook func(strategy string, err error)) {
	p.onFailure = hook
}

// Run applies every strategy to the artifacts, merges the candidate sets per
// kind, and validates the merged candidates.
func (p *Pipeline) Run(a *Artifacts) contact.Bundle {
	if a == nil {
		a = &Artifacts{}
	}

	results := make([]contact.Bundle, len(p.extractors))

	var g errgroup.Group
	for i, e := range p.extractors {
		i, e := i, e
		g.Go(func() error {
			results[i] = p.runStrategy(e, a)
			return nil
		})
	}
	g.Wait()

	merged := contact.Merge(results...)

	return contact.Bundle{
		Emails:   keep(merged.Emails, validate.Email),
		Phones:   keep(merged.Phones, validate.Phone),
		Websites: keep(merged.Websites, validate.Website),
	}
}

// Enhance runs the pipeline and folds the validated bundle into a copy of
// the business record.
func (p *Pipeline) Enhance(a *Artifacts, rec contact.Record) contact.Record {
	return contact.Enrich(rec, p.Run(a))
}

func (p *Pipeline) runStrategy(e Extractor, a *Artifacts) (b contact.Bundle) {
	defer func() {
		if r := recover(); r != nil {
			err := errors.Errorf("%v", r)
			p.log.Warn().Str("strategy", e.Name()).Err(err).Msg("Extraction strategy failed")

			p.mu.Lock()
			if p.onFailure != nil {
				p.onFailure(e.Name(), err)
			}
			p.mu.Unlock()

			b = contact.Bundle{}
		}
	}()

	return e.Extract(a)
}

func keep(values []string, accept func(string) bool) []string {
	var out []string
	for _, v := range values {
		if accept(v) {
			out = append(out, v)
		}
	}

	return out
}
