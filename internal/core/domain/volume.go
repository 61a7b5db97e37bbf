package domain

// Volume represents a named volume. The compact listing format only carries
// the name, driver, mountpoint and scope; everything else stays nil.
type Volume struct {
	Name       string            `json:"Name"`
	Driver     string            `json:"Driver"`
	Mountpoint string            `json:"Mountpoint"`
	CreatedAt  *string           `json:"CreatedAt"`
	Status     map[string]string `json:"Status"`
	Labels     map[string]string `json:"Labels"`
	Scope      string            `json:"Scope"`
	Options    map[string]string `json:"Options"`
	UsageData  *UsageData        `json:"UsageData"`
}

type UsageData struct {
	Size     int64 `json:"Size"`
	RefCount int64 `json:"RefCount"`
}
