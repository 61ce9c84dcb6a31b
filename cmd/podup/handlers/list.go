package handlers

import (
	"context"
	"fmt"
	"sort"

	"github.com/podup/podup/internal/platform/runpod"
)

// Gpus lists the provider's GPU types.
func Gpus(ctx context.Context) error {
	api, err := apiClient()
	if err != nil {
		return err
	}

	gpus, err := api.ListGPUTypes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list GPU types: %w", err)
	}
	if len(gpus) == 0 {
		fmt.Println("No GPU types returned.")
		return nil
	}

	sort.Slice(gpus, func(i, j int) bool { return gpus[i].ID < gpus[j].ID })

	fmt.Printf("%-42s %-26s %8s  %s\n", "ID", "NAME", "VRAM", "CLOUD")
	for _, g := range gpus {
		fmt.Printf("%-42s %-26s %5d GB  %s\n", g.ID, g.DisplayName, g.MemoryInGb, cloudTiers(g))
	}
	return nil
}

func cloudTiers(g runpod.GPUType) string {
	switch {
	case g.SecureCloud && g.CommunityCloud:
		return "secure+community"
	case g.SecureCloud:
		return "secure"
	case g.CommunityCloud:
		return "community"
	default:
		return "-"
	}
}

// Datacenters lists the account's network volumes and their
// datacenters.
func Datacenters(ctx context.Context) error {
	api, err := apiClient()
	if err != nil {
		return err
	}

	volumes, err := api.ListNetworkVolumes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list network volumes: %w", err)
	}
	if len(volumes) == 0 {
		fmt.Println("No network volumes on this account.")
		return nil
	}

	fmt.Printf("%-24s %-20s %-10s %8s\n", "VOLUME ID", "NAME", "LOCATION", "SIZE")
	for _, v := range volumes {
		fmt.Printf("%-24s %-20s %-10s %5d GB\n", v.ID, v.Name, v.DataCenterID, v.Size)
	}
	return nil
}

// Pods lists the account's pods with their SSH endpoints.
func Pods(ctx context.Context) error {
	api, err := apiClient()
	if err != nil {
		return err
	}

	pods, err := api.ListPods(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pods: %w", err)
	}
	if len(pods) == 0 {
		fmt.Println("No pods on this account.")
		return nil
	}

	fmt.Printf("%-16s %-24s %-12s %s\n", "ID", "NAME", "STATUS", "SSH")
	for _, p := range pods {
		endpoint := "-"
		if ip, port, ok := p.SSHEndpoint(); ok {
			endpoint = fmt.Sprintf("%s:%d", ip, port)
		}
		fmt.Printf("%-16s %-24s %-12s %s\n", p.ID, p.Name, p.DesiredStatus, endpoint)
	}
	return nil
}
