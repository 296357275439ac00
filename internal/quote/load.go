package quote

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tbg-enterprises/quote-builder/pkg/constants"
)

// Load reads a YAML-formatted quote record from the given path. Missing
// number and date fields are filled in: a timestamp-derived quote number
// and today's date.
func Load(path string) (*Quote, error) {
	return loadAt(path, time.Now())
}

func loadAt(path string, now time.Time) (*Quote, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading quote file, %s", err)
	}

	var q Quote
	if err := v.Unmarshal(&q); err != nil {
		return nil, fmt.Errorf("unable to decode quote into struct, %s", err)
	}

	if strings.TrimSpace(q.Number) == "" {
		q.Number = NewNumber(now)
	}
	if strings.TrimSpace(q.Date) == "" {
		q.Date = now.Format(constants.DateLayout)
	}
	if strings.TrimSpace(q.ValidDays) == "" {
		q.ValidDays = fmt.Sprintf("%d", constants.DefaultValidDays)
	}

	return &q, nil
}
