package gateway

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	sse "github.com/r3labs/sse/v2"
)

// GatewayEventConsumer streams topology events from the gateway.
type GatewayEventConsumer struct {
	Logger *log.Logger

	baseURL      string
	client       *sse.Client
	eventChannel chan *sse.Event
}

func NewGatewayEventConsumer(logger *log.Logger, baseURL string) *GatewayEventConsumer {
	return &GatewayEventConsumer{Logger: logger, baseURL: strings.TrimRight(baseURL, "/")}
}

func (g *GatewayEventConsumer) Subscribe(eventChannel chan *sse.Event) {

	g.eventChannel = eventChannel
	g.client = sse.NewClient(fmt.Sprintf("%s/events", g.baseURL))

	g.client.OnConnect(func(_ *sse.Client) {
		g.Logger.Info("Connected to zone gateway, listening for events...")
	})
	g.client.OnDisconnect(func(_ *sse.Client) {
		g.Logger.Info("Disconnected from zone gateway")
	})

	if err := g.client.SubscribeChan("", g.eventChannel); err != nil {
		g.Logger.Errorf("error subscribing to gateway events: %s", err)
	}
}

func (g *GatewayEventConsumer) Unsubscribe() {
	g.Logger.Debug("Unsubscribe events")
	if g.client != nil {
		g.client.Unsubscribe(g.eventChannel)
	}
}
