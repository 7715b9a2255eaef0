package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	modules  []string
	messages []string
	details  []map[string]interface{}
}

func (l *recordingLogger) Debug(module, message string, details map[string]interface{}) {}
func (l *recordingLogger) Info(module, message string, details map[string]interface{}) {
	l.modules = append(l.modules, module)
	l.messages = append(l.messages, message)
	l.details = append(l.details, details)
}
func (l *recordingLogger) Warn(module, message string, details map[string]interface{})  {}
func (l *recordingLogger) Error(module, message string, details map[string]interface{}) {}
func (l *recordingLogger) Sync() error                                                  { return nil }

func TestAuditTrailRecordsEvents(t *testing.T) {
	log := &recordingLogger{}
	trail := NewAuditTrail(nil, log)

	err := trail.record(context.Background(), "PLAN_CHANGED", map[string]interface{}{
		"old_plan": "solo",
		"new_plan": "business",
	})

	require.NoError(t, err)
	require.Len(t, log.messages, 1)
	assert.Equal(t, "AUDIT", log.modules[0])
	assert.Equal(t, "PLAN_CHANGED", log.messages[0])
	assert.Equal(t, "business", log.details[0]["new_plan"])
}

func TestAuditTrailRunToleratesMissingBroker(t *testing.T) {
	trail := NewAuditTrail(nil, &recordingLogger{})
	assert.NoError(t, trail.Run())
}
