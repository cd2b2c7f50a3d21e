// Package confcheck validates application configuration before the process
// starts serving traffic. It ties together the pieces of this module: bind a
// typed struct with pkg/config, declare an ordered rule chain with
// pkg/validate (plus the connectivity probes in pkg/conncheck), then run
// everything at startup through a Runner that renders every failure and
// aborts when the configuration is invalid.
//
//	rules := validate.New[AppConfig]("App").
//		Add(validate.NotEmpty(validate.Prop("Name", func(c AppConfig) string { return c.Name })))
//
//	confcheck.NewRunner().
//		Register("app", confcheck.For(rules, func() (AppConfig, error) {
//			var cfg AppConfig
//			return cfg, config.Load(&cfg)
//		})).
//		MustRun()
//
// The Runner never stops early: every check runs and every failure is
// reported, so one restart fixes the whole configuration instead of one
// field at a time.
package confcheck
