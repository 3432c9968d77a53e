package scene

import (
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridExtent     = 20
	gridMinorStep  = 1
	gridMajorStep  = 5
	gridMinorAlpha = 40
	gridMajorAlpha = 90
	backdropScale  = 1000
)

// backdropPaths are tried in order so the backdrop is found whether run from
// the repo root or cmd/portfolio.
var backdropPaths = []string{
	"assets/backdrop/backdrop.png",
	"assets/backdrop/backdrop.jpg",
	"../../assets/backdrop/backdrop.png",
	"../../assets/backdrop/backdrop.jpg",
}

// Scene holds the fixed presentation camera and the optional equirectangular
// backdrop panorama the mirror blocks sit in front of. The camera is not user
// controllable; the page is a display piece, not an editor.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool

	// Backdrop: equirect panorama drawn first in 3D mode. GPU load is deferred
	// until first Draw so it happens after the window/GL context exists.
	backdropTex     rl.Texture2D
	backdropMesh    rl.Mesh
	backdropMtl     rl.Material
	backdropLoaded  bool
	backdropPending bool
	backdropPath    string
	backdropCamLoc  int32
	backdropTexLoc  int32
}

// New returns a scene with a perspective camera framing the cube from the
// front-right. Grid is hidden by default (it is a debug aid here).
func New() *Scene {
	s := &Scene{}
	s.Camera.Position = rl.NewVector3(5.5, 4.2, 7.5)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 40
	s.Camera.Projection = rl.CameraPerspective
	s.findBackdrop()
	return s
}

// SetGridVisible toggles the debug grid.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// findBackdrop locates the backdrop file; GPU loading waits for the first Draw.
func (s *Scene) findBackdrop() {
	for _, p := range backdropPaths {
		cleaned := filepath.Clean(p)
		if _, err := os.Stat(cleaned); err == nil {
			s.backdropPath = cleaned
			s.backdropPending = true
			return
		}
	}
}

// ensureBackdropLoaded runs on the first Draw with a pending backdrop so
// texture and shader creation happen after the GL context exists.
func (s *Scene) ensureBackdropLoaded() {
	if !s.backdropPending || s.backdropPath == "" {
		return
	}
	path := s.backdropPath
	s.backdropPending = false
	s.backdropPath = ""

	s.backdropTex = rl.LoadTexture(path)
	if !rl.IsTextureValid(s.backdropTex) {
		return
	}
	shader := rl.LoadShaderFromMemory(equirectVS, equirectFS)
	if !rl.IsShaderValid(shader) {
		rl.UnloadTexture(s.backdropTex)
		return
	}
	s.backdropMesh = rl.GenMeshCube(1, 1, 1)
	s.backdropMtl = rl.LoadMaterialDefault()
	s.backdropMtl.Shader = shader
	s.backdropCamLoc = rl.GetShaderLocation(shader, "cameraPosition")
	s.backdropTexLoc = rl.GetShaderLocation(shader, "skybox")
	s.backdropLoaded = true
}

// Draw renders the 3D portion of the frame: backdrop, optional grid, then the
// caller's 3D content, all between BeginMode3D and EndMode3D.
func (s *Scene) Draw(draw3D func()) {
	s.ensureBackdropLoaded()
	rl.BeginMode3D(s.Camera)
	if s.backdropLoaded {
		s.drawBackdrop()
	}
	if s.GridVisible {
		drawDebugGrid()
	}
	if draw3D != nil {
		draw3D()
	}
	rl.EndMode3D()
}

// drawBackdrop draws the panorama as a large cube centered on the camera.
func (s *Scene) drawBackdrop() {
	rl.DisableDepthMask()
	rl.DisableBackfaceCulling()
	pos := s.Camera.Position
	scale := rl.MatrixScale(backdropScale, backdropScale, backdropScale)
	trans := rl.MatrixTranslate(pos.X, pos.Y, pos.Z)
	transform := rl.MatrixMultiply(scale, trans)
	if s.backdropCamLoc >= 0 {
		camPos := []float32{pos.X, pos.Y, pos.Z}
		rl.SetShaderValueV(s.backdropMtl.Shader, s.backdropCamLoc, camPos, rl.ShaderUniformVec3, 1)
	}
	if s.backdropTexLoc >= 0 {
		rl.SetShaderValueTexture(s.backdropMtl.Shader, s.backdropTexLoc, s.backdropTex)
	}
	rl.DrawMesh(s.backdropMesh, s.backdropMtl, transform)
	rl.EnableBackfaceCulling()
	rl.EnableDepthMask()
}

// Equirectangular backdrop shader: samples the panorama by view direction.
const (
	equirectVS = `#version 330
in vec3 vertexPosition;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragWorldPos;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragWorldPos = worldPos.xyz;
  gl_Position = matProjection * matView * worldPos;
}
`
	equirectFS = `#version 330
in vec3 fragWorldPos;
out vec4 finalColor;
uniform sampler2D skybox;
uniform vec3 cameraPosition;
void main() {
  vec3 dir = normalize(fragWorldPos - cameraPosition);
  float lon = atan(dir.z, dir.x);
  float lat = asin(clamp(dir.y, -1.0, 1.0));
  float u = lon / 6.28318530718 + 0.5;
  float v = 0.5 - lat / 3.14159265359;
  finalColor = texture(skybox, vec2(u, v));
}
`
)

// drawDebugGrid draws minor/major grid lines on the XZ plane. Debug aid for
// checking layer alignment after many scramble cycles.
func drawDebugGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}
}
