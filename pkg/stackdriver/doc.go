// Package stackdriver provides types, interfaces, and helpers for working
// with the Stackdriver monitoring and alerting API.
//
// # Overview
//
// The stackdriver package defines the generic Record type, the result
// envelope, the error taxonomy, and the interfaces for resource-oriented
// clients (e.g. UsersClient, GroupsClient). A concrete implementation of
// these clients is provided by the sdclient package, which wires
// configuration and transport. Most consumers should import sdclient to
// construct a client and then interact with the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/stackdriver/stackdriver-go/pkg/sdclient"
//	  "github.com/stackdriver/stackdriver-go/pkg/stackdriver"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := sdclient.New(&stackdriver.Config{APIKey: "my-key"})
//	  if err != nil { log.Fatal(err) }
//
//	  groups, err := cli.Groups().List(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = groups
//	}
//
// # Collections and verbs
//
// Every resource collection the API exposes is enumerated in a Registry
// resolved at construction time, together with the verbs it supports (LIST,
// GET, CREATE, DELETE, QUERY). The typed clients are thin wrappers over the
// generic CollectionClient dispatcher, which can also be obtained directly
// via Client.Collection for collections without a typed wrapper.
//
// # Records
//
// Responses decode into Record values, generic maps whose fields mirror the
// JSON the server returned. A record's id is assigned only by the server: it
// appears after a successful create, and only records carrying an id can be
// deleted. Delete merges the server's deleted_epoch timestamp back into the
// record.
//
// # Errors
//
// Failures surface as one of TransportError, APIError, NotFoundError or
// ValidationError. Use IsNotFound, IsValidation and IsTransport to classify
// without depending on concrete types. Nothing is retried or recovered
// internally; translation, not resilience, is this library's job.
package stackdriver
