// Package sdclient wires configuration and transport into a concrete
// stackdriver.Client.
//
// Basic usage:
//
//	cli, err := sdclient.New(&stackdriver.Config{
//	  APIKey: os.Getenv("STACKDRIVER_APIKEY"),
//	})
//	if err != nil {
//	  log.Fatal(err)
//	}
//
//	groups, err := cli.Groups().List(ctx, nil)
//
// The zero-value endpoint targets the production API
// (https://api.stackdriver.com/v0.2/). Point Endpoint somewhere else for
// testing; httptest servers work as-is.
package sdclient
