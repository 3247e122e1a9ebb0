package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetup_JSONAndLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	Setup(&buf, zerolog.WarnLevel, false)

	log.Info().Msg("hidden")
	log.Warn().Str("uid", "600000001").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected info to be filtered, got %q", out)
	}
	if !strings.Contains(out, `"uid":"600000001"`) || !strings.Contains(out, `"message":"shown"`) {
		t.Fatalf("expected json warn line, got %q", out)
	}
}
