package protocol

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"
)

const maxResponseSize = 16 * 1024 * 1024

type Client struct {
	addr    string
	conn    net.Conn
	scanner *bufio.Scanner
	mu      sync.Mutex
}

func NewClient(ctx context.Context, addr string) (*Client, error) {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 64*1024), maxResponseSize)

	return &Client{
		addr:    addr,
		conn:    conn,
		scanner: scanner,
	}, nil
}

func (c *Client) Addr() string {
	return c.addr
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.SendRequest(ctx, Request{Type: RequestPing})
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("ping failed: %s", resp.Error)
	}
	return nil
}

func (c *Client) SendQuery(ctx context.Context, sql string) (Response, error) {
	return c.SendRequest(ctx, Request{Type: RequestSQL, SQL: sql})
}

func (c *Client) SendRequest(ctx context.Context, req Request) (Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := json.Marshal(req)
	if err != nil {
		return Response{}, err
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Time{}
	}
	if err := c.conn.SetDeadline(deadline); err != nil {
		return Response{}, fmt.Errorf("failed to set deadline: %w", err)
	}
	stop := context.AfterFunc(ctx, func() {
		c.conn.SetDeadline(time.Now()) // nolint:errcheck
	})
	defer stop()

	_, err = c.conn.Write(append(data, '\n'))
	if err != nil {
		return Response{}, fmt.Errorf("failed to send request: %w", err)
	}

	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return Response{}, fmt.Errorf("failed to read response: %w", err)
		}
		return Response{}, fmt.Errorf("failed to read response: connection closed")
	}

	var resp Response
	if err := json.Unmarshal(c.scanner.Bytes(), &resp); err != nil {
		return Response{}, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return resp, nil
}
