package session

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/hazardwatch/internal/database"
)

// Needs a reachable server, e.g. MONGO_TEST_URI=mongodb://localhost:27017.
func TestMongoStorage(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	db, err := database.Connect(context.Background(), uri, fmt.Sprintf("hazardwatch_test_%d", time.Now().UnixNano()))
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Database.Drop(ctx)
		_ = db.Disconnect(ctx)
	})

	exerciseStorage(t, NewMongoStorage(db.Database))
}
