package scripting

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Envelope markers printed by the payload around its single JSON reply line.
// Everything else on stdout is vendor noise (the script host echoes license
// banners and plugin chatter on some installs).
const (
	envelopeBegin = "__DVRC_RESULT__"
	envelopeEnd   = "__DVRC_END__"
)

// payloadTemplate is the Python source executed by the script host. The call
// spec is embedded hex-encoded, which sidesteps every quoting pitfall of
// placing arbitrary JSON inside Python source.
const payloadTemplate = `import json
import sys

SPEC = json.loads(bytes.fromhex("%s").decode("utf-8"))


def emit(envelope):
    sys.stdout.write("` + envelopeBegin + `" + json.dumps(envelope) + "` + envelopeEnd + `" + "\n")
    sys.stdout.flush()


def bail(kind, message):
    emit({"ok": False, "kind": kind, "error": message})
    sys.exit(0)


def normalize(value, depth=0):
    if depth > 6:
        return None
    if value is None or isinstance(value, (bool, int, float, str)):
        return value
    if isinstance(value, (list, tuple)):
        return [normalize(v, depth + 1) for v in value]
    if isinstance(value, dict):
        return dict((str(k), normalize(v, depth + 1)) for k, v in value.items())
    # Opaque scripting object: capture what identifies it, the handle itself
    # cannot leave this process
    out = {}
    name_fn = getattr(value, "GetName", None)
    if callable(name_fn):
        try:
            out["name"] = normalize(name_fn(), depth + 1)
        except Exception:
            pass
    props_fn = getattr(value, "GetClipProperty", None)
    if callable(props_fn):
        try:
            out["properties"] = normalize(props_fn(), depth + 1)
        except Exception:
            pass
    if out:
        return out
    return str(value)


def find_clip(app, name):
    pm = app.GetProjectManager()
    project = pm.GetCurrentProject() if pm else None
    pool = project.GetMediaPool() if project else None
    folder = pool.GetCurrentFolder() if pool else None
    clips = (folder.GetClipList() if folder else None) or []
    for clip in clips:
        if clip.GetName() == name:
            return clip
    return None


app = bmd.scriptapp(SPEC["app"])
if app is None:
    bail("unavailable", "scripting service is not reachable")

target = app
for step in SPEC["target"]:
    target = getattr(target, step)()
    if target is None:
        bail("unavailable", step + " returned no object")

args = list(SPEC["args"])

if SPEC.get("clip"):
    clip = find_clip(app, SPEC["clip"])
    if clip is None:
        bail("exception", "no clip named '" + SPEC["clip"] + "' in the current media pool folder")
    args.insert(0, clip)

if SPEC.get("currentProject"):
    project = app.GetProjectManager().GetCurrentProject()
    if project is None:
        bail("unavailable", "no project is currently open")
    args.insert(0, project)

try:
    result = getattr(target, SPEC["method"])(*args)
except Exception as exc:
    bail("exception", str(exc))

emit({"ok": True, "result": normalize(result)})
`

// BuildPayload renders the Python payload for a call.
func BuildPayload(call Call) (string, error) {
	if call.Method == "" {
		return "", fmt.Errorf("scripting call has no method")
	}

	target := call.Target
	if target == nil {
		target = []string{}
	}

	args := call.Args
	if args == nil {
		args = []any{}
	}

	spec := map[string]any{
		"app":    call.AppName(),
		"target": target,
		"method": call.Method,
		"args":   args,
	}

	if call.ClipName != "" {
		spec["clip"] = call.ClipName
	}

	if call.CurrentProject {
		spec["currentProject"] = true
	}

	data, err := json.Marshal(spec)
	if err != nil {
		return "", fmt.Errorf("failed to encode call spec: %w", err)
	}

	return fmt.Sprintf(payloadTemplate, hex.EncodeToString(data)), nil
}
