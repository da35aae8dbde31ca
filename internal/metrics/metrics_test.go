package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r.EntitiesGenerated == nil || r.PersistDuration == nil || r.PersistErrors == nil {
		t.Fatal("metrics not initialized")
	}
	if r.registry == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestRecordEntities(t *testing.T) {
	r := NewRegistry()
	r.RecordEntities("node", 10)
	r.RecordEntities("node", 5)

	var metric dto.Metric
	if err := r.EntitiesGenerated.WithLabelValues("node").Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 15 {
		t.Errorf("Counter value = %v, want 15", metric.Counter.GetValue())
	}
}

func TestRecordPersist(t *testing.T) {
	r := NewRegistry()
	r.RecordPersist("nodes", 10*time.Millisecond, nil)
	r.RecordPersist("nodes", 20*time.Millisecond, errors.New("boom"))

	var metric dto.Metric
	if err := r.PersistErrors.WithLabelValues("nodes").Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 1 {
		t.Errorf("Error counter = %v, want 1", metric.Counter.GetValue())
	}

	families, err := r.registry.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	for _, f := range families {
		if f.GetName() == "topogen_persist_duration_seconds" {
			if got := f.GetMetric()[0].GetHistogram().GetSampleCount(); got != 2 {
				t.Errorf("Sample count = %d, want 2", got)
			}
			return
		}
	}
	t.Error("duration histogram not gathered")
}

func TestWriteTextfile(t *testing.T) {
	r := NewRegistry()
	r.RecordEntities("cdplink", 4)
	r.RecordRun(time.Second)

	path := filepath.Join(t.TempDir(), "topogen.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), `topogen_entities_generated_total{kind="cdplink"} 4`) {
		t.Errorf("unexpected textfile content:\n%s", data)
	}
	if !strings.Contains(string(data), "topogen_run_duration_seconds 1") {
		t.Errorf("run duration missing:\n%s", data)
	}
}
