package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mab2k/homebridge-teufel/internal/models"
	"golang.org/x/time/rate"
)

// GatewayAPIService talks to the zone gateway in front of the Raumfeld system.
type GatewayAPIService struct {
	logger  *log.Logger
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

func NewGatewayAPIService(logger *log.Logger, baseURL string, timeout time.Duration, rateLimitRPS float64) *GatewayAPIService {
	if rateLimitRPS <= 0 {
		rateLimitRPS = 5
	}
	burst := int(rateLimitRPS)
	if burst < 1 {
		burst = 1
	}
	return &GatewayAPIService{
		logger:  logger,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(rateLimitRPS), burst),
	}
}

func (g *GatewayAPIService) GET(ctx context.Context, path string) ([]byte, error) {
	return g.makeRequest(ctx, http.MethodGet, path, nil)
}

func (g *GatewayAPIService) POST(ctx context.Context, path string) ([]byte, error) {
	return g.makeRequest(ctx, http.MethodPost, path, nil)
}

// GetZoneConfiguration reads the current zone configuration document.
func (g *GatewayAPIService) GetZoneConfiguration(ctx context.Context) ([]byte, error) {
	body, err := g.GET(ctx, "/zoneConfiguration")
	if err != nil {
		return nil, fmt.Errorf("error reading zone configuration from gateway: %w", err)
	}
	return body, nil
}

// VirtualRenderer resolves the virtual renderer with the given udn,
// returning models.ErrRendererNotFound when the gateway doesn't know it.
func (g *GatewayAPIService) VirtualRenderer(ctx context.Context, udn string) (models.Renderer, error) {
	if udn == "" {
		return models.Renderer{}, models.ErrRendererNotFound
	}

	body, err := g.GET(ctx, rendererPath(udn, ""))
	if err != nil {
		return models.Renderer{}, err
	}

	respBody := RendererResponse{}
	if err := json.Unmarshal(body, &respBody); err != nil {
		return models.Renderer{}, fmt.Errorf("error parsing renderer response: %w", err)
	}
	if respBody.Udn == "" {
		respBody.Udn = udn
	}

	return models.Renderer{Udn: respBody.Udn, Name: respBody.Name}, nil
}

func (g *GatewayAPIService) TransportInfo(ctx context.Context, rendererUdn string) (models.TransportInfo, error) {
	body, err := g.GET(ctx, rendererPath(rendererUdn, "/transportInfo"))
	if err != nil {
		return models.TransportInfo{}, err
	}

	info := models.TransportInfo{}
	if err := json.Unmarshal(body, &info); err != nil {
		return models.TransportInfo{}, fmt.Errorf("error parsing transport info response: %w", err)
	}
	return info, nil
}

func (g *GatewayAPIService) Play(ctx context.Context, rendererUdn string) error {
	return g.command(ctx, rendererPath(rendererUdn, "/play"))
}

func (g *GatewayAPIService) Stop(ctx context.Context, rendererUdn string) error {
	return g.command(ctx, rendererPath(rendererUdn, "/stop"))
}

func (g *GatewayAPIService) LeaveStandby(ctx context.Context, rendererUdn string, roomUdn string) error {
	q := url.Values{"roomUdn": {roomUdn}}
	return g.command(ctx, rendererPath(rendererUdn, "/leaveStandby")+"?"+q.Encode())
}

func (g *GatewayAPIService) EnterManualStandby(ctx context.Context, rendererUdn string, roomUdn string) error {
	q := url.Values{"roomUdn": {roomUdn}}
	return g.command(ctx, rendererPath(rendererUdn, "/enterManualStandby")+"?"+q.Encode())
}

func (g *GatewayAPIService) ConnectRoomToZone(ctx context.Context, roomUdn string, zoneUdn string) error {
	q := url.Values{"roomUdn": {roomUdn}, "zoneUdn": {zoneUdn}}
	return g.command(ctx, "/zones/connectRoomToZone?"+q.Encode())
}

func (g *GatewayAPIService) command(ctx context.Context, path string) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}
	body, err := g.POST(ctx, path)
	if err != nil {
		return err
	}

	// commands answer with an empty body or a status document
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	respBody := CommandResponse{}
	if err := json.Unmarshal(body, &respBody); err != nil {
		g.logger.Debug("unexpected command response", "path", path, "body", string(body))
		return nil
	}
	if respBody.Error != "" {
		return fmt.Errorf("gateway rejected command %s: %s", path, respBody.Error)
	}
	return nil
}

func rendererPath(udn string, suffix string) string {
	return fmt.Sprintf("/renderers/%s%s", url.PathEscape(udn), suffix)
}

func (g *GatewayAPIService) makeRequest(ctx context.Context, verb string, path string, body []byte) ([]byte, error) {

	req, err := http.NewRequestWithContext(ctx, verb, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return responseBody, nil
	case resp.StatusCode == http.StatusNotFound && strings.HasPrefix(path, "/renderers/"):
		return nil, models.ErrRendererNotFound
	default:
		g.logger.Error("Error making gateway call", "path", path, "status", resp.Status)
		return nil, fmt.Errorf("gateway call %s %s failed: %s", verb, path, resp.Status)
	}
}
