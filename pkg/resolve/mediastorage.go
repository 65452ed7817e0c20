package resolve

import (
	"context"

	"github.com/Norgate-AV/dvrc/internal/scripting"
)

var mediaStorageTarget = []string{"GetMediaStorage"}

// MediaStorage exposes the vendor's media storage subsystem: browsing mounted
// volumes and importing clips into the current media pool folder.
type MediaStorage struct {
	c *Client
}

// GetMountedVolumeList returns the absolute paths of all mounted volumes
// visible on the media storage page.
func (m *MediaStorage) GetMountedVolumeList(ctx context.Context) ([]string, error) {
	result, err := m.c.invoke(ctx, mediaStorageTarget, "GetMountedVolumeList")
	if err != nil {
		return nil, err
	}

	return result.StringSlice(), nil
}

// GetSubFolderList returns the absolute paths of the folders inside the given
// media storage folder.
func (m *MediaStorage) GetSubFolderList(ctx context.Context, folderPath string) ([]string, error) {
	result, err := m.c.invoke(ctx, mediaStorageTarget, "GetSubFolderList", folderPath)
	if err != nil {
		return nil, err
	}

	return result.StringSlice(), nil
}

// GetFileList returns the media files inside the given media storage folder.
// Image sequences collapse to a single entry the way the vendor displays them.
func (m *MediaStorage) GetFileList(ctx context.Context, folderPath string) ([]string, error) {
	result, err := m.c.invoke(ctx, mediaStorageTarget, "GetFileList", folderPath)
	if err != nil {
		return nil, err
	}

	return result.StringSlice(), nil
}

// RevealInStorage expands and highlights the given path on the media storage
// page.
func (m *MediaStorage) RevealInStorage(ctx context.Context, path string) (bool, error) {
	result, err := m.c.invoke(ctx, mediaStorageTarget, "RevealInStorage", path)
	if err != nil {
		return false, err
	}

	return result.Bool(), nil
}

// AddItemsToMediaPool imports one or more file or folder paths into the
// current media pool folder and returns the created items.
func (m *MediaStorage) AddItemsToMediaPool(ctx context.Context, paths ...string) ([]MediaPoolItem, error) {
	args := make([]any, 0, len(paths))
	for _, path := range paths {
		args = append(args, path)
	}

	result, err := m.c.invoke(ctx, mediaStorageTarget, "AddItemListToMediaPool", args...)
	if err != nil {
		return nil, err
	}

	return decodeMediaPoolItems(result)
}

// AddItemListToMediaPool imports a list of file or folder paths into the
// current media pool folder and returns the created items.
func (m *MediaStorage) AddItemListToMediaPool(ctx context.Context, paths []string) ([]MediaPoolItem, error) {
	result, err := m.c.invoke(ctx, mediaStorageTarget, "AddItemListToMediaPool", paths)
	if err != nil {
		return nil, err
	}

	return decodeMediaPoolItems(result)
}

// AddItemInfosToMediaPool imports clips described by item infos, honouring
// their frame ranges, and returns the created items.
func (m *MediaStorage) AddItemInfosToMediaPool(ctx context.Context, infos []ItemInfo) ([]MediaPoolItem, error) {
	result, err := m.c.invoke(ctx, mediaStorageTarget, "AddItemListToMediaPool", infos)
	if err != nil {
		return nil, err
	}

	return decodeMediaPoolItems(result)
}

// AddClipMattesToMediaPool attaches the given matte files to the named clip
// in the current media pool folder. Eye selects the target eye on
// stereoscopic clips and is omitted when empty.
func (m *MediaStorage) AddClipMattesToMediaPool(ctx context.Context, clipName string, paths []string, eye StereoEye) (bool, error) {
	args := []any{paths}
	if eye != StereoEyeNone {
		args = append(args, string(eye))
	}

	result, err := m.c.bridge.Invoke(ctx, scripting.Call{
		Target:   mediaStorageTarget,
		Method:   "AddClipMattesToMediaPool",
		Args:     args,
		ClipName: clipName,
	})
	if err != nil {
		return false, err
	}

	return result.Bool(), nil
}

// AddTimelineMattesToMediaPool imports the given matte files as timeline
// mattes into the current media pool folder and returns the created items.
func (m *MediaStorage) AddTimelineMattesToMediaPool(ctx context.Context, paths []string) ([]MediaPoolItem, error) {
	result, err := m.c.invoke(ctx, mediaStorageTarget, "AddTimelineMattesToMediaPool", paths)
	if err != nil {
		return nil, err
	}

	return decodeMediaPoolItems(result)
}
