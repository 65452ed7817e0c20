package resolve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/dvrc/internal/testutil"
)

func TestMediaStorage_GetMountedVolumeList(t *testing.T) {
	t.Parallel()

	bridge := testutil.NewMockBridge().WithResult(`["C:\\", "D:\\", "\\\\nas\\media"]`)
	storage := newTestClient(bridge).MediaStorage()

	volumes, err := storage.GetMountedVolumeList(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"C:\\", "D:\\", "\\\\nas\\media"}, volumes)

	call := bridge.LastCall()
	assert.Equal(t, []string{"GetMediaStorage"}, call.Target)
	assert.Equal(t, "GetMountedVolumeList", call.Method)
}

func TestMediaStorage_GetSubFolderList(t *testing.T) {
	t.Parallel()

	bridge := testutil.NewMockBridge().WithResult(`["D:\\footage\\day1", "D:\\footage\\day2"]`)
	storage := newTestClient(bridge).MediaStorage()

	folders, err := storage.GetSubFolderList(context.Background(), "D:\\footage")
	require.NoError(t, err)
	assert.Len(t, folders, 2)

	call := bridge.LastCall()
	assert.Equal(t, "GetSubFolderList", call.Method)
	require.Len(t, call.Args, 1)
	assert.Equal(t, "D:\\footage", call.Args[0])
}

func TestMediaStorage_GetFileList_EmptyFolder(t *testing.T) {
	t.Parallel()

	bridge := testutil.NewMockBridge().WithResult(`[]`)
	storage := newTestClient(bridge).MediaStorage()

	files, err := storage.GetFileList(context.Background(), "D:\\empty")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestMediaStorage_RevealInStorage(t *testing.T) {
	t.Parallel()

	bridge := testutil.NewMockBridge().WithResult(`true`)
	storage := newTestClient(bridge).MediaStorage()

	ok, err := storage.RevealInStorage(context.Background(), "D:\\footage\\clip.mov")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMediaStorage_AddItemsToMediaPool(t *testing.T) {
	t.Parallel()

	bridge := testutil.NewMockBridge().
		WithResult(`[{"name": "clip.mov", "properties": {"FPS": "24"}}]`)
	storage := newTestClient(bridge).MediaStorage()

	items, err := storage.AddItemsToMediaPool(context.Background(), "D:\\footage\\clip.mov")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "clip.mov", items[0].Name)
	assert.Equal(t, "24", items[0].Properties["FPS"])

	call := bridge.LastCall()
	assert.Equal(t, "AddItemListToMediaPool", call.Method)
	assert.Equal(t, []any{"D:\\footage\\clip.mov"}, call.Args)
}

func TestMediaStorage_AddItemListToMediaPool_StringItems(t *testing.T) {
	t.Parallel()

	// Older vendor builds return display names instead of item objects.
	bridge := testutil.NewMockBridge().WithResult(`["a.mov", "b.mov"]`)
	storage := newTestClient(bridge).MediaStorage()

	items, err := storage.AddItemListToMediaPool(context.Background(), []string{"D:\\a.mov", "D:\\b.mov"})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a.mov", items[0].Name)
	assert.Nil(t, items[0].Properties)
}

func TestMediaStorage_AddItemInfosToMediaPool(t *testing.T) {
	t.Parallel()

	bridge := testutil.NewMockBridge().WithResult(`[{"name": "clip.mov"}]`)
	storage := newTestClient(bridge).MediaStorage()

	infos := []ItemInfo{{Media: "D:\\clip.mov", StartFrame: 10, EndFrame: 200}}

	items, err := storage.AddItemInfosToMediaPool(context.Background(), infos)
	require.NoError(t, err)
	require.Len(t, items, 1)

	call := bridge.LastCall()
	require.Len(t, call.Args, 1)
	assert.Equal(t, infos, call.Args[0])
}

func TestMediaStorage_AddItemListToMediaPool_NullResult(t *testing.T) {
	t.Parallel()

	bridge := testutil.NewMockBridge().WithResult(`null`)
	storage := newTestClient(bridge).MediaStorage()

	items, err := storage.AddItemListToMediaPool(context.Background(), []string{"D:\\missing.mov"})
	require.NoError(t, err)
	assert.Nil(t, items, "A null vendor reply should normalize to no items")
}

func TestMediaStorage_AddClipMattesToMediaPool(t *testing.T) {
	t.Parallel()

	bridge := testutil.NewMockBridge().WithResult(`true`)
	storage := newTestClient(bridge).MediaStorage()

	paths := []string{"D:\\mattes\\garbage.png"}

	ok, err := storage.AddClipMattesToMediaPool(context.Background(), "clip.mov", paths, StereoEyeLeft)
	require.NoError(t, err)
	assert.True(t, ok)

	call := bridge.LastCall()
	assert.Equal(t, "AddClipMattesToMediaPool", call.Method)
	assert.Equal(t, "clip.mov", call.ClipName)
	require.Len(t, call.Args, 2)
	assert.Equal(t, paths, call.Args[0])
	assert.Equal(t, "left", call.Args[1])
}

func TestMediaStorage_AddClipMattesToMediaPool_NoEye(t *testing.T) {
	t.Parallel()

	bridge := testutil.NewMockBridge().WithResult(`true`)
	storage := newTestClient(bridge).MediaStorage()

	_, err := storage.AddClipMattesToMediaPool(context.Background(), "clip.mov", []string{"D:\\m.png"}, StereoEyeNone)
	require.NoError(t, err)

	assert.Len(t, bridge.LastCall().Args, 1, "The eye argument should be omitted when unset")
}

func TestMediaStorage_AddTimelineMattesToMediaPool(t *testing.T) {
	t.Parallel()

	bridge := testutil.NewMockBridge().WithResult(`[{"name": "matte.png"}]`)
	storage := newTestClient(bridge).MediaStorage()

	items, err := storage.AddTimelineMattesToMediaPool(context.Background(), []string{"D:\\matte.png"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "matte.png", items[0].Name)
	assert.Equal(t, "AddTimelineMattesToMediaPool", bridge.LastCall().Method)
}
