package submission

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-overview-api/pkg/log"
)

func TestLogSink_Publish(t *testing.T) {
	buf := &bytes.Buffer{}
	logrus.SetOutput(buf)
	defer logrus.SetOutput(os.Stderr)
	log.SetupTestLogger()

	sink := NewLogSink(nil)
	require.NoError(t, sink.Publish(context.Background(), "sessao1", `{"totalClients": "10"}`))

	assert.Contains(t, buf.String(), "Dados para envio")
	assert.Contains(t, buf.String(), "totalClients")
}

func TestAckNotifier_Notify(t *testing.T) {
	notifier := NewAckNotifier(nil)

	message, err := notifier.Notify(context.Background(), "sessao1")
	require.NoError(t, err)
	assert.Equal(t, DefaultAcknowledgement, message)
}
