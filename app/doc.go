// Package app runs a key path lookup service as an Fx application: it loads one
// document, serves it through named lookup listeners and logs build info on start.
//
//	application := app.NewApp(
//	    app.WithLogLevel("info"),
//	    app.WithDocument("config.yaml"),
//	    app.WithLookupListener("lookup", listener.WithAddress(":8080")),
//	)
//	application.Run()
package app
