package picker

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"picker.punishwheel.com/pkg/sampler"
	"picker.punishwheel.com/pkg/sources"
)

// Draw is one served punishment with its provenance.
type Draw struct {
	Text     string `json:"text"`
	Source   string `json:"source"` // provider name, or "fallback"
	Cycle    int64  `json:"cycle"`
	ServedAt int64  `json:"servedAt"`
}

// Picker composes the candidate source with one cycle sampler. All
// remote failures are absorbed here: the caller always gets a draw,
// served from the fallback list when the source misbehaves.
type Picker struct {
	mu      sync.Mutex
	src     sources.Config
	sampler *sampler.CycleSampler
	log     *logrus.Logger
}

func NewPicker(src sources.Config, log *logrus.Logger) (*Picker, error) {
	if len(src.Fallback) == 0 {
		return nil, errors.New("picker: fallback list must not be empty")
	}
	return &Picker{
		src:     src,
		sampler: sampler.New(),
		log:     log,
	}, nil
}

func (p *Picker) Next() (Draw, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	origin := strings.ToLower(p.src.Provider)
	candidates, err := sources.CoreFetchCandidates(p.src)
	if err != nil {
		p.log.WithError(err).WithField("provider", p.src.Provider).Warn("⚠️ Candidate fetch failed, serving fallback list")
		candidates = p.src.Fallback
		origin = "fallback"
	}

	text, err := p.sampler.Next(candidates)
	if err != nil {
		return Draw{}, err
	}

	draw := Draw{
		Text:     text,
		Source:   origin,
		Cycle:    p.sampler.Cycle(),
		ServedAt: time.Now().UnixMilli(),
	}

	p.log.WithFields(logrus.Fields{
		"source":    origin,
		"cycle":     draw.Cycle,
		"remaining": p.sampler.Remaining(),
	}).Debug("🎲 Punishment served")

	return draw, nil
}
