package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/study-coach/internal/types"
)

func TestPrintRunLog(t *testing.T) {
	log := types.NewRunLog(types.ServiceConceptExplanation)
	log.AppendStep("AIFoundationsExpert", types.StageFoundations)
	log.Complete()

	var buf bytes.Buffer
	NewPrinter(&buf).PrintRunLog(&log)

	out := buf.String()
	assert.Contains(t, out, "Workflow Log")
	assert.Contains(t, out, "AI 개념 이해")
	assert.Contains(t, out, "completed")
	assert.Contains(t, out, "AIFoundationsExpert")
}

func TestPrintRunLog_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRunLog(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRunLog_ErrorStatusShowsMessage(t *testing.T) {
	log := types.NewRunLog(types.ServiceToolUsage)
	log.Fail("pipeline failure: boom")

	var buf bytes.Buffer
	NewPrinter(&buf).PrintRunLog(&log)

	assert.Contains(t, buf.String(), "pipeline failure: boom")
}

func TestPrintServiceCatalog(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintServiceCatalog()

	out := buf.String()
	for _, st := range types.AllServiceTypes() {
		assert.Contains(t, out, string(st))
		assert.Contains(t, out, st.Label())
	}
}

func TestPrintServiceCatalog_TruncatesOnRuneBoundaries(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintServiceCatalog()

	// Korean description lines exceed the box width; truncation must never
	// cut a rune in half or break the box alignment.
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		assert.True(t, utf8.ValidString(line), "invalid UTF-8 emitted: %q", line)
		if strings.HasPrefix(line, "│") {
			assert.True(t, strings.HasSuffix(line, "│"), "unclosed box line: %q", line)
			assert.Equal(t, 60, runewidth.StringWidth(line), "misaligned box line: %q", line)
		}
	}
}

func TestPrintRunLog_WideContentStaysAligned(t *testing.T) {
	log := types.NewRunLog(types.ServiceCSCareerSpec)
	log.Fail("오류: " + strings.Repeat("한", 40))

	var buf bytes.Buffer
	NewPrinter(&buf).PrintRunLog(&log)

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		assert.True(t, utf8.ValidString(line), "invalid UTF-8 emitted: %q", line)
		if strings.HasPrefix(line, "│") {
			assert.Equal(t, 60, runewidth.StringWidth(line), "misaligned box line: %q", line)
		}
	}
}

func TestPrintGuide_BodyNotTruncated(t *testing.T) {
	long := "가이드 본문 " + strings.Repeat("x", 200)

	var buf bytes.Buffer
	NewPrinter(&buf).PrintGuide(long)

	out := buf.String()
	assert.Contains(t, out, "전문가 팀 학습 가이드")
	assert.Contains(t, out, long)
}
