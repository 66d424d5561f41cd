package rabbitmq

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

type MQConn struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func New(connString string) (*MQConn, error) {
	conn, err := amqp.Dial(connString)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	return &MQConn{
		conn: conn,
		ch: ch,
	}, nil
}

func (mq *MQConn) Publish(queue string, body []byte) error {
	q, err := mq.ch.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return err
	}

	return mq.ch.Publish("", q.Name, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body: body,
	})
}

func (mq *MQConn) Consume(queue string) (<-chan amqp.Delivery, error) {
	q, err := mq.ch.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return mq.ch.Consume(q.Name, "", true, false, false, false, nil)
}

func (mq *MQConn) Close() error {
	if err := mq.ch.Close(); err != nil {
		return err
	}
	return mq.conn.Close()
}
