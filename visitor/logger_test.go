package visitor_test

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/damedic/fhir-tree-go/catalog"
	"github.com/damedic/fhir-tree-go/model"
	"github.com/damedic/fhir-tree-go/visitor"
)

func newTestLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := visitor.NewLogger(newTestLogger(&buf, slog.LevelDebug), slog.LevelDebug)

	n := model.Must(model.NewCode("active"))
	model.Walk(n, l)

	want := `level=DEBUG msg=preVisit type=code depth=0
level=DEBUG msg=visitStart name=code index=-1 type=code depth=0
level=DEBUG msg=visit name=code index=-1 type=code value=active depth=1
level=DEBUG msg=visitEnd name=code index=-1 type=code depth=0
level=DEBUG msg=postVisit type=code depth=0
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
}

func TestLoggerOneRecordPerHook(t *testing.T) {
	order := catalog.SampleNutritionOrder()

	var r visitor.Recorder
	model.Walk(order, &r)

	var buf bytes.Buffer
	model.Walk(order, visitor.NewLogger(newTestLogger(&buf, slog.LevelDebug), slog.LevelDebug))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(r.Events) {
		t.Errorf("logged %d records, recorded %d events", len(lines), len(r.Events))
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	model.Walk(catalog.SampleValueSet(), visitor.NewLogger(newTestLogger(&buf, slog.LevelInfo), slog.LevelDebug))
	if buf.Len() != 0 {
		t.Errorf("debug records were written at info level:\n%s", buf.String())
	}
}

func TestConcurrentTraversals(t *testing.T) {
	sm := catalog.SampleStructureMap()

	var serial bytes.Buffer
	model.Walk(sm, visitor.NewLogger(newTestLogger(&serial, slog.LevelDebug), slog.LevelDebug))
	want := serial.String()
	if want == "" {
		t.Fatal("serial traversal logged nothing")
	}

	const n = 8
	logs := make([]string, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var buf bytes.Buffer
			model.Walk(sm, visitor.NewLogger(newTestLogger(&buf, slog.LevelDebug), slog.LevelDebug))
			logs[i] = buf.String()
		}()
	}
	wg.Wait()

	for i, got := range logs {
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("traversal %d differs from the serial one (-want +got):\n%s", i, diff)
		}
	}
}
