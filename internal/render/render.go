// Package render draws the cube blocks with a single cached mesh and a lit
// shader tuned for the mirrored-metal look. GPU resources are created lazily
// on first draw so they allocate after the window/OpenGL context exists.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"cubefolio/internal/cube"
)

// blockColor is the albedo tint: polished silver.
var blockColor = rl.NewColor(205, 208, 214, 255)

// defaultAmbient keeps the shadowed faces from going fully black.
var defaultAmbient = [4]float32{0.16, 0.17, 0.20, 1.0}

// defaultLightColor is a cool white so the highlights read as mirror glints.
var defaultLightColor = [3]float32{1.0, 0.99, 0.97}

const defaultLightIntensity = float32(0.8)

// Tight, strong specular: the blocks should look like chrome, not plastic.
const defaultSpecularPower = float32(96.0)
const defaultSpecularStrength = float32(0.85)

// Renderer holds the shared block mesh and material. One instance per window.
type Renderer struct {
	mesh     rl.Mesh
	mtl      rl.Material
	ready    bool
	viewPos  [3]float32
	lightDir [3]float32
}

// New returns a renderer with no GPU resources yet; they are created on the
// first DrawBlocks call.
func New() *Renderer {
	return &Renderer{
		lightDir: [3]float32{0.5, 1, 0.35},
	}
}

// SetView sets the camera position and direction-to-light for this frame.
// Call once per frame before DrawBlocks so the shading tracks the camera.
func (r *Renderer) SetView(viewPos, lightDir [3]float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
}

// ensure creates the unit cube mesh and lit material on first use.
func (r *Renderer) ensure() {
	if r.ready {
		return
	}
	r.mesh = rl.GenMeshCube(1, 1, 1)
	r.mtl = rl.LoadMaterialDefault()
	if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = blockColor
	}
	shader := rl.LoadShaderFromMemory(litVS, litFS)
	if rl.IsShaderValid(shader) {
		r.mtl.Shader = shader
	}
	r.ready = true
}

// DrawBlocks draws every block at its node's world transform, scaled by the
// block's physical size. Must be called between BeginMode3D and EndMode3D.
// Blocks with a missing node are skipped.
func (r *Renderer) DrawBlocks(blocks []*cube.Block) {
	r.ensure()
	r.setUniforms()
	for _, b := range blocks {
		if b == nil || b.Node == nil {
			continue
		}
		wp := b.Node.WorldPos()
		wr := b.Node.WorldRot()
		ws := b.Node.WorldScale()
		scaleM := rl.MatrixScale(b.Size.X*ws, b.Size.Y*ws, b.Size.Z*ws)
		rotM := rl.QuaternionToMatrix(wr)
		transM := rl.MatrixTranslate(wp.X, wp.Y, wp.Z)
		transform := rl.MatrixMultiply(rl.MatrixMultiply(scaleM, rotM), transM)
		rl.DrawMesh(r.mesh, r.mtl, transform)
	}
}

// setUniforms pushes per-frame lighting values (cgo-safe: local arrays).
func (r *Renderer) setUniforms() {
	shader := r.mtl.Shader
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := [3]float32{r.viewPos[0], r.viewPos[1], r.viewPos[2]}
	lightDir := [3]float32{r.lightDir[0], r.lightDir[1], r.lightDir[2]}
	amb := [4]float32{defaultAmbient[0], defaultAmbient[1], defaultAmbient[2], defaultAmbient[3]}
	lightColor := [3]float32{defaultLightColor[0], defaultLightColor[1], defaultLightColor[2]}
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightColor[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultLightIntensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularStrength}, rl.ShaderUniformFloat)
	}
}

// Lit shader: directional light + ambient + Blinn-Phong specular. Same vertex
// attributes as raylib meshes: vertexPosition, vertexTexCoord, vertexNormal.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float NdotH = max(dot(N, H), 0.0);
  float spec = pow(NdotH, specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)
