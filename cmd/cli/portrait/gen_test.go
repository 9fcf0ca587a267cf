package portrait

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompt(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{name: "dossier id", args: []string{"dossier-D1"}, contains: "The suspect:"},
		{name: "code", args: []string{"sxp-02"}, contains: "The suspect:"},
		{name: "free prompt", args: []string{"a", "moody", "hangar"}, contains: "a moody hangar"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, prompt(tt.args), tt.contains)
		})
	}
}

func TestGenerate(t *testing.T) {
	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewGray(image.Rect(0, 0, 4, 4))))

	var gotPrompt string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/images/generations") {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Prompt string `json:"prompt"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		gotPrompt = req.Prompt
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"created": 1,
			"data":    []map[string]string{{"b64_json": base64.StdEncoding.EncodeToString(img.Bytes())}},
		})
	}))
	t.Cleanup(server.Close)
	t.Setenv("OPENAI_API_KEY", "test")
	t.Setenv("OPENAI_BASE_URL", server.URL+"/v1")

	outPath := filepath.Join(t.TempDir(), "suspeito.png")
	cmd := NewPortraitCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"gen", "SXP-03", "--out", outPath})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, gotPrompt, "The suspect:")
	assert.Contains(t, out.String(), outPath)
	written, err := os.ReadFile(outPath)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(written))
	require.NoError(t, err)
}
