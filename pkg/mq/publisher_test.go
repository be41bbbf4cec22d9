package mq

import (
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage(t *testing.T) {
	msg, err := Message(map[string]string{"order_ref": "BOOK-1"})
	require.NoError(t, err)

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.JSONEq(t, `{"order_ref":"BOOK-1"}`, string(msg.Body))

	_, err = Message(make(chan int))
	assert.Error(t, err)
}

func TestClose_Unconnected(t *testing.T) {
	assert.NoError(t, (&Publisher{}).Close())
}
