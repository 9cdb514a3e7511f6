package seo

import (
	"io"
	"log/slog"
	"testing"

	"github.com/prachinebangla/seogen/internal/classifier"
	"github.com/prachinebangla/seogen/internal/generation"
	"github.com/prachinebangla/seogen/internal/mocks"
	"github.com/prachinebangla/seogen/internal/prompt"
	"github.com/stretchr/testify/require"
)

func testSettings() Settings {
	return Settings{
		DefaultCompanyName:    "Prachine Bangla Online",
		DefaultPharmacyName:   "Prachine Bangla Online Pharmacy",
		DefaultShopName:       "Prachine Bangla Online Shop",
		MaxTitleLength:        80,
		MaxDescriptionLength:  160,
		CompetitorAttribution: "at Arogga Online Pharmacy",
	}
}

// newTestSuite wires every generator to a real gateway over backend.
func newTestSuite(t *testing.T, backend *mocks.MockBackend) (*Suite, *mocks.MockRecorder) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	recorder := mocks.NewMockRecorder()

	gw, err := generation.NewGateway(backend, generation.GatewayConfig{
		MaxRetries: 3,
		Options:    generation.DefaultOptions(),
	}, logger, generation.WithRecorder(recorder))
	require.NoError(t, err)

	prompts, err := prompt.NewBuilder("", []string{"Daraz", "Arogga", "MedEasy"})
	require.NoError(t, err)

	suite, err := New(Dependencies{
		Generator:  gw,
		Prompts:    prompts,
		Classifier: classifier.New(nil),
		Settings:   testSettings(),
		Logger:     logger,
		Recorder:   recorder,
	})
	require.NoError(t, err)
	return suite, recorder
}
