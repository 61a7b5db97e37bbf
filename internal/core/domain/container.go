package domain

// Container represents a container as reported by the runtime's list view.
type Container struct {
	ID      string            `json:"Id"`
	Names   []string          `json:"Names"`
	Image   string            `json:"Image"`
	ImageID string            `json:"ImageID"` // empty, the list view omits it
	Command string            `json:"Command"`
	Created int64             `json:"Created"`
	Ports   []Port            `json:"Ports"`
	State   string            `json:"State"` // running, exited, etc.
	Status  string            `json:"Status"`
	Labels  map[string]string `json:"Labels"`
}

// Port is a published port mapping of a container.
type Port struct {
	IP          string `json:"IP,omitempty"`
	PrivatePort uint16 `json:"PrivatePort"`
	PublicPort  uint16 `json:"PublicPort,omitempty"`
	Type        string `json:"Type"`
}

// Name returns the first name of the container, or an empty string.
func (c Container) Name() string {
	if len(c.Names) == 0 {
		return ""
	}
	return c.Names[0]
}

// HasName reports whether name is one of the container's names.
func (c Container) HasName(name string) bool {
	for _, n := range c.Names {
		if n == name {
			return true
		}
	}
	return false
}

// Running reports whether the container is in the running state.
func (c Container) Running() bool {
	return c.State == "running"
}
