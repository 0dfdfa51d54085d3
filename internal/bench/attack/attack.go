package attack

import (
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

var errNoCodes = errors.New("attack requires seeded codes")

type Config struct {
	BaseURL            string
	Codes              []string
	Rate               int
	Duration           time.Duration
	CreateRatio        float64
	AnalyticsRatio     float64
	Visitors           int
	Type               string
	RateLimitBypass    string
	InsecureSkipVerify bool
	Connections        int
	MaxWorkers         uint64
}

// Targeter picks the request mix for cfg.Type.
func Targeter(cfg *Config) (vegeta.Targeter, error) {
	if cfg.Type == "create" {
		return CreateTargeter(cfg.BaseURL, cfg.RateLimitBypass), nil
	}
	if len(cfg.Codes) == 0 {
		return nil, fmt.Errorf("%s: %w", cfg.Type, errNoCodes)
	}

	redirect := RedirectTargeter(cfg.BaseURL, cfg.Codes, Visitors(cfg.Visitors, cfg.RateLimitBypass))
	analytics := AnalyticsTargeter(cfg.BaseURL, cfg.Codes, cfg.RateLimitBypass)

	switch cfg.Type {
	case "redirect":
		return redirect, nil
	case "analytics":
		return analytics, nil
	case "mixed":
		create := CreateTargeter(cfg.BaseURL, cfg.RateLimitBypass)
		return MixedTargeter(create, analytics, redirect, cfg.CreateRatio, cfg.AnalyticsRatio), nil
	default:
		return nil, fmt.Errorf("unknown attack type: %s", cfg.Type)
	}
}

func Run(cfg *Config, out io.Writer) error {
	targeter, err := Targeter(cfg)
	if err != nil {
		return err
	}

	opts := []func(*vegeta.Attacker){
		vegeta.Redirects(vegeta.NoFollow),
		vegeta.KeepAlive(true),
		vegeta.Connections(cfg.Connections),
		vegeta.Timeout(5 * time.Second),
		vegeta.MaxBody(0),
		vegeta.HTTP2(false),
		vegeta.TLSConfig(&tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}),
	}
	if cfg.MaxWorkers > 0 {
		opts = append(opts, vegeta.MaxWorkers(cfg.MaxWorkers))
	}
	attacker := vegeta.NewAttacker(opts...)

	fmt.Fprintf(out, "Starting %s attack: rate=%d/s duration=%s\n", cfg.Type, cfg.Rate, cfg.Duration)

	rate := vegeta.Rate{Freq: cfg.Rate, Per: time.Second}
	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, rate, cfg.Duration, cfg.Type) {
		metrics.Add(res)
	}
	metrics.Close()

	return vegeta.NewTextReporter(&metrics).Report(out)
}
