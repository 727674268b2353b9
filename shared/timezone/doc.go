// Package timezone keeps the application timezone used to stamp scoped
// requests and to age ledger entries.
//
//	timezone.Init(cfg)                       // once, at startup
//	now := timezone.Now()                    // current time in app timezone
//	t, err := timezone.Parse("2006-01-02", "2024-01-01")
//
// The zone comes from APP_TIMEZONE and must be an IANA name such as "UTC"
// or "Asia/Jakarta". Before Init runs every helper works in UTC.
package timezone
