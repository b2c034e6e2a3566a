package exporter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/lecture-quiz/internal/quiz"
)

// Export writes <name>.md (summary, quiz, answers, transcript) and <name>.docx.
func (e *implExporter) Export(ctx context.Context, name string, pack Pack) ([]string, error) {
	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	md := renderMarkdown(pack, time.Now())

	mdPath := filepath.Join(e.outputDir, name+".md")
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		return nil, fmt.Errorf("write markdown: %w", err)
	}

	docxPath := filepath.Join(e.outputDir, name+".docx")
	if err := markdownToDocx(md, docxPath); err != nil {
		return []string{mdPath}, fmt.Errorf("write docx: %w", err)
	}

	e.logger.Info(ctx, "Study pack written: %s, %s", mdPath, docxPath)
	return []string{mdPath, docxPath}, nil
}

func renderMarkdown(pack Pack, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n_%s_\n\n", pack.Title, now.Format("2006-01-02 15:04"))

	b.WriteString("## Summary\n\n")
	b.WriteString(strings.TrimSpace(pack.Summary))
	b.WriteString("\n\n")

	if len(pack.Questions) > 0 {
		b.WriteString("## Quiz\n\n")
		b.WriteString(quiz.FormatQuizText(pack.Questions, nil))

		b.WriteString("## Answers\n\n")
		for i := range pack.Questions {
			n := i + 1
			answer := pack.AnswerKey[n]
			fmt.Fprintf(&b, "- %d: **%s** %s\n", n, answer, pack.Questions[i].Options.Get(answer))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Transcript\n\n")
	b.WriteString(strings.TrimSpace(pack.Transcript))
	b.WriteString("\n")

	return b.String()
}
