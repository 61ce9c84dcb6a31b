package runpod

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
)

const defaultEndpoint = "https://api.runpod.io/graphql"

// RealClient implements Client against the RunPod GraphQL API.
type RealClient struct {
	apiKey     string
	endpoint   string
	httpClient *retryablehttp.Client
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithEndpoint overrides the API endpoint (useful for testing).
func WithEndpoint(url string) ClientOption {
	return func(c *RealClient) {
		c.endpoint = url
	}
}

// WithHTTPClient sets a custom retryable HTTP client.
func WithHTTPClient(hc *retryablehttp.Client) ClientOption {
	return func(c *RealClient) {
		c.httpClient = hc
	}
}

// NewRealClient creates a client authenticated with the given API key.
// Transport-level failures (connection errors, 429, 5xx) are retried a
// few times by the underlying HTTP client; GraphQL-level errors are
// never retried here.
func NewRealClient(apiKey string, opts ...ClientOption) *RealClient {
	hc := retryablehttp.NewClient()
	hc.RetryMax = 3
	hc.Logger = nil

	c := &RealClient{
		apiKey:     apiKey,
		endpoint:   defaultEndpoint,
		httpClient: hc,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ Client = (*RealClient)(nil)

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

// query executes a GraphQL request and decodes the data envelope into
// out. GraphQL errors are returned as messages for the caller to
// classify.
func (c *RealClient) query(ctx context.Context, query string, variables map[string]any, out any) ([]string, error) {
	body, err := json.Marshal(gqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Messages: []string{err.Error()}}
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Messages: []string{err.Error()}}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Messages: []string{string(payload)}}
	}

	var envelope gqlResponse
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Messages: []string{"malformed response: " + err.Error()}}
	}
	if len(envelope.Errors) > 0 {
		messages := make([]string, len(envelope.Errors))
		for i, e := range envelope.Errors {
			messages[i] = e.Message
		}
		return messages, nil
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return nil, &APIError{Messages: []string{"malformed data envelope: " + err.Error()}}
		}
	}
	return nil, nil
}

const createPodMutation = `
mutation CreatePod($input: PodFindAndDeployOnDemandInput!) {
    podFindAndDeployOnDemand(input: $input) {
        id
        name
        desiredStatus
        imageName
        machine {
            gpuDisplayName
        }
    }
}`

// CreatePod creates a new on-demand pod. The account's SSH public keys
// are injected as the PUBLIC_KEY environment variable; without it the
// pod is unreachable over SSH.
func (c *RealClient) CreatePod(ctx context.Context, opts CreatePodOpts) (*Pod, error) {
	if opts.PublicKey == "" {
		return nil, &InvalidSpecError{Field: "public_key", Value: "", Detail: "SSH public key is required for API-created pods"}
	}

	cloudType := opts.CloudType
	if cloudType == "" {
		cloudType = "ALL"
	}

	input := map[string]any{
		"cloudType": cloudType,
		"gpuTypeId": opts.GPUTypeID,
		"gpuCount":  opts.GPUCount,
		"name":      opts.Name,
		"env":       []EnvVar{{Key: "PUBLIC_KEY", Value: opts.PublicKey}},
	}
	if opts.TemplateID != "" {
		input["templateId"] = opts.TemplateID
	}
	if opts.NetworkVolumeID != "" {
		input["networkVolumeId"] = opts.NetworkVolumeID
	}
	if opts.DataCenterID != "" {
		input["dataCenterId"] = opts.DataCenterID
	}

	var data struct {
		Pod *Pod `json:"podFindAndDeployOnDemand"`
	}
	messages, err := c.query(ctx, createPodMutation, map[string]any{"input": input}, &data)
	if err != nil {
		return nil, err
	}
	if len(messages) > 0 {
		return nil, classifyCreateError(messages, opts)
	}
	if data.Pod == nil {
		return nil, &APIError{Messages: []string{"creation returned no pod"}}
	}
	if data.Pod.Machine != nil {
		data.Pod.GPUDisplayName = data.Pod.Machine.GPUDisplayName
	}
	return data.Pod, nil
}

const getPodQuery = `
query Pod($input: PodFilter!) {
    pod(input: $input) {
        id
        name
        desiredStatus
        imageName
        runtime {
            uptimeInSeconds
            ports {
                ip
                isIpPublic
                privatePort
                publicPort
                type
            }
        }
    }
}`

// GetPod returns the pod with the given id, or nil if the API does not
// know it.
func (c *RealClient) GetPod(ctx context.Context, id string) (*Pod, error) {
	var data struct {
		Pod *Pod `json:"pod"`
	}
	messages, err := c.query(ctx, getPodQuery, map[string]any{"input": map[string]any{"podId": id}}, &data)
	if err != nil {
		return nil, err
	}
	if len(messages) > 0 {
		return nil, &APIError{Messages: messages}
	}
	return data.Pod, nil
}

const terminatePodMutation = `
mutation TerminatePod($input: PodTerminateInput!) {
    podTerminate(input: $input)
}`

// TerminatePod terminates the pod with the given id.
func (c *RealClient) TerminatePod(ctx context.Context, id string) error {
	messages, err := c.query(ctx, terminatePodMutation, map[string]any{"input": map[string]any{"podId": id}}, nil)
	if err != nil {
		return err
	}
	if len(messages) > 0 {
		return &APIError{Messages: messages}
	}
	return nil
}

const sshKeysQuery = `
query {
    myself {
        pubKey
    }
}`

// GetSSHPublicKeys returns the SSH public keys registered on the
// account.
func (c *RealClient) GetSSHPublicKeys(ctx context.Context) (string, error) {
	var data struct {
		Myself struct {
			PubKey string `json:"pubKey"`
		} `json:"myself"`
	}
	messages, err := c.query(ctx, sshKeysQuery, nil, &data)
	if err != nil {
		return "", err
	}
	if len(messages) > 0 {
		return "", &APIError{Messages: messages}
	}
	return data.Myself.PubKey, nil
}

const networkVolumesQuery = `
query {
    myself {
        networkVolumes {
            id
            name
            dataCenterId
            size
        }
    }
}`

// ListNetworkVolumes returns the account's network volumes.
func (c *RealClient) ListNetworkVolumes(ctx context.Context) ([]NetworkVolume, error) {
	var data struct {
		Myself struct {
			NetworkVolumes []NetworkVolume `json:"networkVolumes"`
		} `json:"myself"`
	}
	messages, err := c.query(ctx, networkVolumesQuery, nil, &data)
	if err != nil {
		return nil, err
	}
	if len(messages) > 0 {
		return nil, &APIError{Messages: messages}
	}
	return data.Myself.NetworkVolumes, nil
}

const gpuTypesQuery = `
query GpuTypes {
    gpuTypes {
        id
        displayName
        memoryInGb
        communityCloud
        secureCloud
    }
}`

// ListGPUTypes returns all GPU types the provider knows about.
func (c *RealClient) ListGPUTypes(ctx context.Context) ([]GPUType, error) {
	var data struct {
		GPUTypes []GPUType `json:"gpuTypes"`
	}
	messages, err := c.query(ctx, gpuTypesQuery, nil, &data)
	if err != nil {
		return nil, err
	}
	if len(messages) > 0 {
		return nil, &APIError{Messages: messages}
	}
	return data.GPUTypes, nil
}

const listPodsQuery = `
query {
    myself {
        pods {
            id
            name
            desiredStatus
            imageName
            machine {
                gpuDisplayName
            }
            runtime {
                uptimeInSeconds
                ports {
                    ip
                    isIpPublic
                    privatePort
                    publicPort
                }
            }
        }
    }
}`

// ListPods returns the account's pods.
func (c *RealClient) ListPods(ctx context.Context) ([]Pod, error) {
	var data struct {
		Myself struct {
			Pods []Pod `json:"pods"`
		} `json:"myself"`
	}
	messages, err := c.query(ctx, listPodsQuery, nil, &data)
	if err != nil {
		return nil, err
	}
	if len(messages) > 0 {
		return nil, &APIError{Messages: messages}
	}
	pods := data.Myself.Pods
	for i := range pods {
		if pods[i].Machine != nil {
			pods[i].GPUDisplayName = pods[i].Machine.GPUDisplayName
		}
	}
	return pods, nil
}
