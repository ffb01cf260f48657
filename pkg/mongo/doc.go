// Package mongo provides MongoDB connection management for the service.
//
// Configuration is entirely environment-driven: the connection string and the
// database name are read at process start, so a missing value fails startup
// rather than a request. Transient connect failures are retried a configured
// number of times before giving up.
//
// # Usage
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongo.NewDatabase(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer db.Client().Disconnect(context.Background())
//
// Connection failures are wrapped in ErrFailedToConnect so callers can match
// them with errors.Is.
package mongo
