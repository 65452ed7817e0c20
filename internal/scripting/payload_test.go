package scripting

import (
	"encoding/hex"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// specFromPayload decodes the hex-embedded call spec back out of a rendered payload
func specFromPayload(t *testing.T, payload string) gjson.Result {
	t.Helper()

	re := regexp.MustCompile(`bytes\.fromhex\("([0-9a-f]*)"\)`)
	matches := re.FindStringSubmatch(payload)
	require.Len(t, matches, 2, "Payload should embed a hex-encoded spec")

	raw, err := hex.DecodeString(matches[1])
	require.NoError(t, err)

	spec := gjson.ParseBytes(raw)
	require.True(t, spec.IsObject(), "Spec should be a JSON object")

	return spec
}

func TestBuildPayload_SimpleCall(t *testing.T) {
	t.Parallel()

	payload, err := BuildPayload(Call{
		Target: []string{"GetMediaStorage"},
		Method: "GetMountedVolumeList",
	})
	require.NoError(t, err)

	spec := specFromPayload(t, payload)
	assert.Equal(t, "Resolve", spec.Get("app").String())
	assert.Equal(t, "GetMountedVolumeList", spec.Get("method").String())
	assert.Equal(t, int64(1), spec.Get("target.#").Int())
	assert.Equal(t, "GetMediaStorage", spec.Get("target.0").String())
	assert.True(t, spec.Get("args").IsArray())
	assert.Equal(t, int64(0), spec.Get("args.#").Int())
	assert.False(t, spec.Get("clip").Exists())
	assert.False(t, spec.Get("currentProject").Exists())
}

func TestBuildPayload_ArgsSurviveRoundTrip(t *testing.T) {
	t.Parallel()

	payload, err := BuildPayload(Call{
		Target: []string{"GetMediaStorage"},
		Method: "GetSubFolderList",
		Args:   []any{`C:\Media\it's "quoted"`},
	})
	require.NoError(t, err)

	spec := specFromPayload(t, payload)
	assert.Equal(t, `C:\Media\it's "quoted"`, spec.Get("args.0").String())
}

func TestBuildPayload_ItemInfoArgs(t *testing.T) {
	t.Parallel()

	payload, err := BuildPayload(Call{
		Target: []string{"GetMediaStorage"},
		Method: "AddItemListToMediaPool",
		Args: []any{
			[]map[string]any{
				{"media": "C:/media/a.mov", "startFrame": 0, "endFrame": 24},
			},
		},
	})
	require.NoError(t, err)

	spec := specFromPayload(t, payload)
	assert.Equal(t, "C:/media/a.mov", spec.Get("args.0.0.media").String())
	assert.Equal(t, int64(24), spec.Get("args.0.0.endFrame").Int())
}

func TestBuildPayload_ClipAndCurrentProject(t *testing.T) {
	t.Parallel()

	payload, err := BuildPayload(Call{
		Target:         []string{"GetProjectManager"},
		Method:         "CloseProject",
		ClipName:       "intro.mov",
		CurrentProject: true,
	})
	require.NoError(t, err)

	spec := specFromPayload(t, payload)
	assert.Equal(t, "intro.mov", spec.Get("clip").String())
	assert.True(t, spec.Get("currentProject").Bool())
}

func TestBuildPayload_CustomApp(t *testing.T) {
	t.Parallel()

	payload, err := BuildPayload(Call{
		App:    "Fusion",
		Method: "GetVersion",
	})
	require.NoError(t, err)

	spec := specFromPayload(t, payload)
	assert.Equal(t, "Fusion", spec.Get("app").String())
	assert.Equal(t, int64(0), spec.Get("target.#").Int())
}

func TestBuildPayload_MissingMethod(t *testing.T) {
	t.Parallel()

	_, err := BuildPayload(Call{Target: []string{"GetMediaStorage"}})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no method")
}

func TestCall_AppName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Resolve", Call{}.AppName())
	assert.Equal(t, "Fusion", Call{App: "Fusion"}.AppName())
}
