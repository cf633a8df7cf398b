package sources

import (
	"errors"
	"strings"

	"picker.punishwheel.com/pkg/opensheet"
)

// Config describes where candidate punishments come from.
type Config struct {
	Provider string
	SheetID  string
	TabName  string
	Fallback []string
}

// ErrNoCandidates means the source answered but yielded no usable rows.
var ErrNoCandidates = errors.New("source produced no usable candidates")

// CoreFetchCandidates fetches the candidate list from the configured provider.
// Duplicates are preserved; rows that are blank after trimming are dropped.
func CoreFetchCandidates(cfg Config) ([]string, error) {
	provider := strings.ToLower(cfg.Provider)
	switch provider {
	case "opensheet":
		rows, err := opensheet.GetRows(cfg.SheetID, cfg.TabName)
		if err != nil {
			return nil, err
		}
		result := make([]string, 0, len(rows))
		for _, r := range rows {
			value, err := opensheet.FirstField(r)
			if err != nil {
				continue
			}
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			result = append(result, value)
		}
		if len(result) == 0 {
			return nil, ErrNoCandidates
		}
		return result, nil

	case "static":
		if len(cfg.Fallback) == 0 {
			return nil, ErrNoCandidates
		}
		result := make([]string, len(cfg.Fallback))
		copy(result, cfg.Fallback)
		return result, nil

	default:
		return nil, errors.New("unsupported source provider: " + cfg.Provider)
	}
}
