// Package mailsniper provides a Go client SDK for MailSniper, an email
// verification API.
//
// The client verifies single addresses and reports account usage. It is a
// thin translation layer: requests go through an HTTP client you provide,
// and every response becomes either a typed result or a typed error.
//
// Basic usage:
//
//	client, err := mailsniper.New("ms_12345678_abcdef1234567890abcdef1234567890", http.DefaultClient)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.VerifyEmail(ctx, "someone@example.com")
//	if errors.Is(err, mailsniper.ErrQuotaExceeded) {
//	    // back off
//	}
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("valid:", result.IsValid, "risk:", result.Risk)
//
// The client never retries, caches or rate limits. Configure timeouts and
// TLS on the HTTP client.
package mailsniper
