package resolve

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/Norgate-AV/dvrc/internal/scripting"
)

// StereoEye selects which eye a matte attaches to on stereoscopic clips.
type StereoEye string

const (
	StereoEyeNone  StereoEye = ""
	StereoEyeLeft  StereoEye = "left"
	StereoEyeRight StereoEye = "right"
)

// ItemInfo describes a clip range for the item-info flavour of media pool import.
type ItemInfo struct {
	Media      string `json:"media" mapstructure:"media"`
	StartFrame int    `json:"startFrame" mapstructure:"startFrame"`
	EndFrame   int    `json:"endFrame" mapstructure:"endFrame"`
}

// MediaPoolItem is the identifying snapshot of a clip created in the media
// pool. Live vendor handles cannot cross the script host boundary, so items
// are addressed by name afterwards.
type MediaPoolItem struct {
	Name       string            `mapstructure:"name"`
	Properties map[string]string `mapstructure:"properties"`
}

// DatabaseInfo mirrors the vendor's project database descriptor.
type DatabaseInfo struct {
	DbType    string `json:"DbType" mapstructure:"DbType"`
	DbName    string `json:"DbName" mapstructure:"DbName"`
	IPAddress string `json:"IpAddress,omitempty" mapstructure:"IpAddress"`
}

// decodeMediaPoolItems converts a scripting reply into media pool items. The
// vendor returns a list whose elements are objects on current builds and
// plain display strings on older ones.
func decodeMediaPoolItems(result scripting.Result) ([]MediaPoolItem, error) {
	if result.IsNull() {
		return nil, nil
	}

	values, ok := result.Value().([]any)
	if !ok {
		return nil, fmt.Errorf("expected a list of media pool items, got %s", result.Raw())
	}

	items := make([]MediaPoolItem, 0, len(values))

	for _, value := range values {
		switch v := value.(type) {
		case string:
			items = append(items, MediaPoolItem{Name: v})
		default:
			var item MediaPoolItem
			if err := weakDecode(v, &item); err != nil {
				return nil, fmt.Errorf("failed to decode media pool item: %w", err)
			}

			items = append(items, item)
		}
	}

	return items, nil
}

// decodeDatabaseInfo converts a scripting reply into a database descriptor.
func decodeDatabaseInfo(value any) (DatabaseInfo, error) {
	var info DatabaseInfo
	if err := weakDecode(value, &info); err != nil {
		return DatabaseInfo{}, fmt.Errorf("failed to decode database info: %w", err)
	}

	return info, nil
}

// weakDecode maps untyped vendor replies onto structs, tolerating the loose
// typing of the scripting side (numbers where strings are expected, etc.).
func weakDecode(input, output any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           output,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}
