package eventbus

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
)

// KafkaSecurity holds the optional TLS and SASL/PLAIN settings of a cluster.
type KafkaSecurity struct {
	SASLUsername string
	SASLPassword string
	TLS          bool
	CAFile       string
	CertFile     string
	KeyFile      string
	SkipVerify   bool
}

func (s KafkaSecurity) tlsConfig() (*tls.Config, error) {
	if !s.TLS {
		return nil, nil
	}
	cfg := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: s.SkipVerify, //nolint:gosec
	}
	if ca := strings.TrimSpace(s.CAFile); ca != "" {
		pem, err := os.ReadFile(ca)
		if err != nil {
			return nil, fmt.Errorf("read CA file: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("CA file %s holds no PEM certificates", ca)
		}
		cfg.RootCAs = pool
	}
	cert, key := strings.TrimSpace(s.CertFile), strings.TrimSpace(s.KeyFile)
	switch {
	case cert == "" && key == "":
	case cert == "" || key == "":
		return nil, errors.New("client certificate and key must be set together")
	default:
		pair, err := tls.LoadX509KeyPair(cert, key)
		if err != nil {
			return nil, fmt.Errorf("load client certificate: %w", err)
		}
		cfg.Certificates = []tls.Certificate{pair}
	}
	return cfg, nil
}

func (s KafkaSecurity) mechanism() (sasl.Mechanism, error) {
	user, pass := strings.TrimSpace(s.SASLUsername), strings.TrimSpace(s.SASLPassword)
	switch {
	case user == "" && pass == "":
		return nil, nil
	case user == "" || pass == "":
		return nil, errors.New("SASL username and password must be set together")
	}
	return plain.Mechanism{Username: user, Password: pass}, nil
}

// connect builds the dialer used by readers and the transport used by the
// writer and the admin client. The transport is nil for plaintext clusters.
func (s KafkaSecurity) connect() (*kafka.Dialer, *kafka.Transport, error) {
	tlsCfg, err := s.tlsConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("kafka tls: %w", err)
	}
	mech, err := s.mechanism()
	if err != nil {
		return nil, nil, fmt.Errorf("kafka sasl: %w", err)
	}
	dialer := &kafka.Dialer{Timeout: 5 * time.Second, TLS: tlsCfg, SASLMechanism: mech}
	if tlsCfg == nil && mech == nil {
		return dialer, nil, nil
	}
	return dialer, &kafka.Transport{TLS: tlsCfg, SASL: mech}, nil
}

// topicAdmin creates topics on first use and remembers which exist.
type topicAdmin struct {
	client      *kafka.Client
	partitions  int
	replication int

	mu    sync.Mutex
	known map[string]struct{}
}

func newTopicAdmin(brokers []string, transport *kafka.Transport, partitions, replication int) *topicAdmin {
	client := &kafka.Client{Addr: kafka.TCP(brokers...), Timeout: 10 * time.Second}
	if transport != nil {
		client.Transport = transport
	}
	return &topicAdmin{
		client:      client,
		partitions:  partitions,
		replication: replication,
		known:       make(map[string]struct{}),
	}
}

func (a *topicAdmin) ensure(ctx context.Context, topic string) error {
	if topic == "" {
		return errors.New("kafka: empty topic name")
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.known[topic]; ok {
		return nil
	}

	resp, err := a.client.CreateTopics(ctx, &kafka.CreateTopicsRequest{
		Topics: []kafka.TopicConfig{{
			Topic:             topic,
			NumPartitions:     a.partitions,
			ReplicationFactor: a.replication,
		}},
	})
	if err != nil {
		return fmt.Errorf("kafka: create topic %s: %w", topic, err)
	}
	if terr := resp.Errors[topic]; terr != nil && !topicExists(terr) {
		return fmt.Errorf("kafka: create topic %s: %w", topic, terr)
	}
	a.known[topic] = struct{}{}
	return nil
}

func topicExists(err error) bool {
	return errors.Is(err, kafka.TopicAlreadyExists) ||
		strings.Contains(err.Error(), "already exists")
}

// reachable reports whether any broker accepts a connection.
func reachable(ctx context.Context, dialer *kafka.Dialer, brokers []string) error {
	var errs []error
	for _, addr := range brokers {
		conn, err := dialer.DialContext(ctx, "tcp", addr)
		if err == nil {
			return conn.Close()
		}
		errs = append(errs, err)
	}
	return fmt.Errorf("kafka: no broker reachable: %w", errors.Join(errs...))
}

func splitBrokers(list string) []string {
	var out []string
	for _, b := range strings.Split(list, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
