// Package hypr is the Hyprland boundary: synchronous hyprctl queries
// and the socket2 event stream. Wire formats stay inside this package;
// callers only see snapshots and trigger callbacks.
package hypr

import (
	"encoding/json"
	"fmt"
	"os/exec"

	"wsindicator/internal/core/model"
)

// commandRunner invokes an external query and returns its output.
type commandRunner func(args ...string) ([]byte, error)

// Client queries workspace state through hyprctl.
type Client struct {
	run commandRunner
}

// NewClient creates a client that shells out to hyprctl.
func NewClient() *Client {
	return &Client{run: runHyprctl}
}

func runHyprctl(args ...string) ([]byte, error) {
	output, err := exec.Command("hyprctl", append(args, "-j")...).Output()
	if err != nil {
		return nil, fmt.Errorf("hyprctl %v: %w", args, err)
	}
	return output, nil
}

type workspaceInfo struct {
	ID int `json:"id"`
}

// ActiveWorkspace returns the focused workspace id. Special/scratch
// workspaces report negative ids.
func (client *Client) ActiveWorkspace() (int, error) {
	output, err := client.run("activeworkspace")
	if err != nil {
		return 0, err
	}
	var info workspaceInfo
	if err := json.Unmarshal(output, &info); err != nil {
		return 0, fmt.Errorf("decode active workspace: %w", err)
	}
	return info.ID, nil
}

// Workspaces returns the ids of all occupied workspaces, restricted to
// the 1..MaxWorkspaces range. Out-of-range ids are skipped.
func (client *Client) Workspaces() ([]int, error) {
	output, err := client.run("workspaces")
	if err != nil {
		return nil, err
	}
	var infos []workspaceInfo
	if err := json.Unmarshal(output, &infos); err != nil {
		return nil, fmt.Errorf("decode workspace list: %w", err)
	}
	ids := make([]int, 0, len(infos))
	for _, info := range infos {
		if info.ID >= 1 && info.ID <= model.MaxWorkspaces {
			ids = append(ids, info.ID)
		}
	}
	return ids, nil
}

// Refresh builds a snapshot from both queries. Query failures degrade:
// a failed or zero active query defaults to workspace 1, a failed list
// query yields empty occupancy. A negative active id is kept as the
// do-not-show sentinel for special workspaces.
func (client *Client) Refresh() model.Snapshot {
	snapshot := model.Snapshot{CurrentID: 1}

	if id, err := client.ActiveWorkspace(); err == nil && id != 0 {
		snapshot.CurrentID = id
	}

	ids, err := client.Workspaces()
	if err != nil {
		return snapshot
	}
	for _, id := range ids {
		snapshot.Occupied[id] = true
		if id > snapshot.MaxSeenID {
			snapshot.MaxSeenID = id
		}
	}
	return snapshot
}
