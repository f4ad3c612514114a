package render

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/leadwerk/outreach-cli/internal/placeholder"
)

// RenderText fills a text/markdown template into outPath. An existing
// output without overwrite is an idempotent skip, logged and counted as
// success.
func RenderText(tplPath, outPath string, m placeholder.Map, overwrite bool) error {
	if _, err := os.Stat(outPath); err == nil && !overwrite {
		zap.L().Info("render: skipping existing file",
			zap.String("path", outPath),
		)
		return nil
	}

	raw, err := os.ReadFile(tplPath)
	if err != nil {
		return eris.Wrapf(err, "render: read template %s", tplPath)
	}

	filled := ReplaceInText(string(raw), m)

	if err := os.WriteFile(outPath, []byte(filled), 0o644); err != nil {
		return eris.Wrapf(err, "render: write %s", outPath)
	}
	return nil
}

// MarkdownScripts renders the cold email and cold phone call scripts into
// dir. Each file renders independently; a missing template (after language
// fallback) or a write failure is logged and the other file still renders.
// The last failure is returned so the orchestrator can count it.
func MarkdownScripts(dir string, t TextTemplates, m placeholder.Map, overwrite bool) error {
	var lastErr error
	for _, job := range []struct {
		tpl string
		out string
	}{
		{t.Email, "cold_email.md"},
		{t.Phone, "cold_phone_call.md"},
	} {
		outPath := filepath.Join(dir, job.out)
		if err := RenderText(job.tpl, outPath, m, overwrite); err != nil {
			zap.L().Warn("render: markdown script failed",
				zap.String("template", job.tpl),
				zap.String("out", outPath),
				zap.Error(err),
			)
			lastErr = err
		}
	}
	return lastErr
}
