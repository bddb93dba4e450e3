// Package firestore contains the concrete implementation of the persistence layer using Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"

	"fellowpet/config"
	"fellowpet/internal/domain/lifecycle"
	"fellowpet/internal/errors"

	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Firestore client through the Firebase admin SDK
func New(params Params) (*firestore.Client, error) {
	if params.Config.Firestore == nil {
		return nil, errors.New("firestore config is missing")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	var opts []option.ClientOption
	if params.Config.Firestore.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(params.Config.Firestore.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID: params.Config.Firestore.ProjectID,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase app")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("closing Firestore client")

			return client.Close()
		},
	})

	return client, nil
}
