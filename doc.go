// Package passwallet provides a Go client SDK for the PassWallet API,
// a hosted digital-wallet pass issuance service.
//
// Passes are created from server-side templates by submitting
// placeholder values and optional images, then delivered as a signed
// .pkpass archive, a hosted URL, or an email.
//
// Basic usage:
//
//	client, err := passwallet.New("your-app-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pass, err := client.CreatePassFromTemplate(ctx, 42,
//	    passwallet.Values{"Name": "John"}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	data, err := client.DownloadPass(ctx, pass)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	os.WriteFile("pass.pkpass", data, 0644)
package passwallet
