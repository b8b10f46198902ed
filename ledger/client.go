// Package ledger talks to the intent ledger chain over gRPC. It exposes the
// custom intent query service plus the stock Cosmos tx service used for
// settlement-transaction search. Each call tries the configured endpoints in
// round-robin order and returns the first success.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/cosmos/cosmos-sdk/types/query"
	"github.com/cosmos/cosmos-sdk/types/tx"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/arcana-labs/intentsync/logger"
	"github.com/arcana-labs/intentsync/pkg/intentspb"
	"github.com/arcana-labs/intentsync/utils"
)

// ErrIntentNotFound is returned by Intent when the ledger has no intent
// with the requested id.
var ErrIntentNotFound = errors.New("ledger: intent not found")

// settleAction is the message type URL matched by settlement tx search.
const settleAction = "/intents.v1.MsgSettle"

// SettlementTx is one settlement transaction as returned by tx search:
// the committed hash, the block it landed in, and the raw encoded envelope.
type SettlementTx struct {
	Hash   string
	Height int64
	Raw    []byte
}

// Client is a minimal fan-out client over multiple ledger gRPC endpoints.
type Client struct {
	logger        zerolog.Logger
	queryClients  []intentspb.QueryClient
	txClients     []tx.ServiceClient
	conns         []*grpc.ClientConn
	rr            uint32
	txSearchLimit uint64
}

// New dials the provided gRPC URLs (best-effort) and builds a Client.
// Endpoints that fail to dial are skipped; at least one must succeed.
func New(urls []string, txSearchLimit uint64, log zerolog.Logger) (*Client, error) {
	if len(urls) == 0 {
		return nil, errors.New("ledger: at least one gRPC URL is required")
	}
	if txSearchLimit == 0 {
		txSearchLimit = 100
	}

	c := &Client{
		logger:        logger.Component(log, "ledger_client"),
		txSearchLimit: txSearchLimit,
	}

	for i, u := range urls {
		conn, err := utils.CreateGRPCConnection(u)
		if err != nil {
			c.logger.Warn().Str("url", u).Int("index", i).Err(err).Msg("dial failed; skipping endpoint")
			continue
		}
		c.conns = append(c.conns, conn)
		c.queryClients = append(c.queryClients, intentspb.NewQueryClient(conn))
		c.txClients = append(c.txClients, tx.NewServiceClient(conn))
	}

	if len(c.queryClients) == 0 {
		_ = c.Close()
		return nil, fmt.Errorf("ledger: all dials failed (%d urls)", len(urls))
	}

	return c, nil
}

// Close closes all owned connections.
func (c *Client) Close() error {
	var firstErr error
	for _, conn := range c.conns {
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.conns = nil
	c.queryClients = nil
	c.txClients = nil
	return firstErr
}

// LatestIntentID returns the highest intent id on the ledger, 0 when the
// ledger holds no intents yet.
func (c *Client) LatestIntentID(ctx context.Context) (uint64, error) {
	resp, err := c.intents(ctx, &intentspb.QueryIntentsRequest{
		Limit:   1,
		Reverse: true,
	})
	if err != nil {
		return 0, err
	}
	if len(resp.Intents) == 0 {
		return 0, nil
	}
	return resp.Intents[0].GetId(), nil
}

// IntentsPage fetches one page of intents in ascending id order.
func (c *Client) IntentsPage(ctx context.Context, offset, limit uint64) ([]*intentspb.Intent, error) {
	resp, err := c.intents(ctx, &intentspb.QueryIntentsRequest{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	return resp.Intents, nil
}

// LatestIntents fetches the newest intents, highest id first.
func (c *Client) LatestIntents(ctx context.Context, limit uint64) ([]*intentspb.Intent, error) {
	resp, err := c.intents(ctx, &intentspb.QueryIntentsRequest{
		Limit:   limit,
		Reverse: true,
	})
	if err != nil {
		return nil, err
	}
	return resp.Intents, nil
}

func (c *Client) intents(ctx context.Context, req *intentspb.QueryIntentsRequest) (*intentspb.QueryIntentsResponse, error) {
	if len(c.queryClients) == 0 {
		return nil, errors.New("ledger: no endpoints configured")
	}

	start := int(atomic.AddUint32(&c.rr, 1)-1) % len(c.queryClients)

	var lastErr error
	for i := 0; i < len(c.queryClients); i++ {
		idx := (start + i) % len(c.queryClients)

		resp, err := c.queryClients[idx].Intents(ctx, req)
		if err == nil {
			return resp, nil
		}

		lastErr = err
		c.logger.Debug().
			Int("attempt", i+1).
			Int("endpoint_index", idx).
			Err(err).
			Msg("Intents query failed; trying next endpoint")
	}

	return nil, fmt.Errorf("ledger: Intents failed on all %d endpoints: %w", len(c.queryClients), lastErr)
}

// Intent fetches one intent by id. Returns ErrIntentNotFound when every
// endpoint reports the id as unknown.
func (c *Client) Intent(ctx context.Context, id uint64) (*intentspb.Intent, error) {
	if len(c.queryClients) == 0 {
		return nil, errors.New("ledger: no endpoints configured")
	}

	start := int(atomic.AddUint32(&c.rr, 1)-1) % len(c.queryClients)

	var lastErr error
	for i := 0; i < len(c.queryClients); i++ {
		idx := (start + i) % len(c.queryClients)

		resp, err := c.queryClients[idx].Intent(ctx, &intentspb.QueryIntentRequest{Id: id})
		if err == nil {
			if resp.Intent == nil {
				return nil, ErrIntentNotFound
			}
			return resp.Intent, nil
		}
		if status.Code(err) == codes.NotFound {
			return nil, ErrIntentNotFound
		}

		lastErr = err
		c.logger.Debug().
			Int("attempt", i+1).
			Int("endpoint_index", idx).
			Err(err).
			Msg("Intent query failed; trying next endpoint")
	}

	return nil, fmt.Errorf("ledger: Intent failed on all %d endpoints: %w", len(c.queryClients), lastErr)
}

// SearchSettlementTxs returns the most recent committed settlement
// transactions, newest first, up to the configured page limit. The raw
// envelope bytes come back alongside hash and height so the caller can
// decode the packets without a second round trip.
func (c *Client) SearchSettlementTxs(ctx context.Context) ([]SettlementTx, error) {
	if len(c.txClients) == 0 {
		return nil, errors.New("ledger: no endpoints configured")
	}

	start := int(atomic.AddUint32(&c.rr, 1)-1) % len(c.txClients)

	req := &tx.GetTxsEventRequest{
		Query: fmt.Sprintf("message.action='%s'", settleAction),
		Pagination: &query.PageRequest{
			Limit: c.txSearchLimit,
		},
		OrderBy: tx.OrderBy_ORDER_BY_DESC,
	}

	var lastErr error
	for i := 0; i < len(c.txClients); i++ {
		idx := (start + i) % len(c.txClients)

		resp, err := c.txClients[idx].GetTxsEvent(ctx, req)
		if err == nil {
			results := make([]SettlementTx, 0, len(resp.TxResponses))
			for _, txResp := range resp.TxResponses {
				if txResp.Tx == nil {
					continue
				}
				results = append(results, SettlementTx{
					Hash:   txResp.TxHash,
					Height: txResp.Height,
					Raw:    txResp.Tx.Value,
				})
			}
			return results, nil
		}

		lastErr = err
		c.logger.Debug().
			Int("attempt", i+1).
			Int("endpoint_index", idx).
			Err(err).
			Msg("GetTxsEvent failed; trying next endpoint")
	}

	return nil, fmt.Errorf("ledger: GetTxsEvent failed on all %d endpoints: %w", len(c.txClients), lastErr)
}
