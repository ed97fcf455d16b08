package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/google/uuid"

	"shadowbox/core"
	"shadowbox/math"
	"shadowbox/renderer"
	"shadowbox/scene"
)

// Scene shader. The vertex stage computes the fragment's position in
// light clip space alongside the usual MVP transform; the fragment
// stage runs the shadow test against the depth map and applies
// shadow-attenuated Lambertian shading. Emissive draws skip all of it
// and output the flat color.
const vertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec3 inColor;

uniform mat4 mvp;
uniform mat4 model;
uniform mat4 lightSpace;

out vec3 fragNormal;
out vec3 fragColor;
out vec4 fragLightSpacePos;

void main() {
    gl_Position = mvp * vec4(inPosition, 1.0);
    fragNormal = mat3(model) * inNormal;
    fragColor = inColor;
    fragLightSpacePos = lightSpace * model * vec4(inPosition, 1.0);
}
` + "\x00"

const fragSrc = `
#version 410 core
in vec3 fragNormal;
in vec3 fragColor;
in vec4 fragLightSpacePos;

uniform vec3 lightDir;
uniform float ambient;
uniform vec3 objectColor;
uniform int emissive;
uniform sampler2D shadowMap;

out vec4 outColor;

float shadowFactor(vec3 n) {
    vec3 proj = fragLightSpacePos.xyz / fragLightSpacePos.w;
    proj = proj * 0.5 + 0.5;
    // Beyond the light's far plane: fail open, never darken.
    if (proj.z > 1.0) {
        return 0.0;
    }
    float closest = texture(shadowMap, proj.xy).r;
    float bias = max(0.005 * (1.0 - dot(n, lightDir)), 0.001);
    return proj.z - bias > closest ? 1.0 : 0.0;
}

void main() {
    vec3 base = fragColor * objectColor;
    if (emissive == 1) {
        outColor = vec4(base, 1.0);
        return;
    }
    vec3 n = normalize(fragNormal);
    float diffuse = max(dot(n, lightDir), 0.0);
    float shadow = shadowFactor(n);
    float brightness = ambient + (1.0 - ambient) * diffuse * (1.0 - shadow);
    outColor = vec4(base * brightness, 1.0);
}
` + "\x00"

// depth-only shaders for the shadow map pass
const depthVertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
uniform mat4 lightMVP;
void main() {
    gl_Position = lightMVP * vec4(inPosition, 1.0);
}
` + "\x00"

const depthFragSrc = `
#version 410 core
void main() {}
` + "\x00"

// Renderer is the OpenGL draw backend. It owns the two shader
// programs, the shadow map FBO and the GPU mesh cache.
type Renderer struct {
	program    uint32
	shadowProg uint32

	mvpLoc         int32
	modelLoc       int32
	lightSpaceLoc  int32
	lightDirLoc    int32
	ambientLoc     int32
	objectColorLoc int32
	emissiveLoc    int32
	shadowMapLoc   int32

	shadowLightMVPLoc int32

	viewportW int32
	viewportH int32

	shadowMap *ShadowMap
	gpuMeshes map[uuid.UUID]*GPUMesh
}

var _ renderer.DrawBackend = (*Renderer)(nil)

// NewRenderer initializes OpenGL and the shadow map FBO. Must be
// called after the GLFW window context is made current.
func NewRenderer(shadowMapSize int32) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	core.LogInfo("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	prog, err := newProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("scene shader compile: %w", err)
	}

	shadowProg, err := newProgram(depthVertSrc, depthFragSrc)
	if err != nil {
		return nil, fmt.Errorf("depth shader compile: %w", err)
	}

	sm, err := NewShadowMap(shadowMapSize)
	if err != nil {
		return nil, err
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)

	r := &Renderer{
		program:    prog,
		shadowProg: shadowProg,

		mvpLoc:         gl.GetUniformLocation(prog, gl.Str("mvp\x00")),
		modelLoc:       gl.GetUniformLocation(prog, gl.Str("model\x00")),
		lightSpaceLoc:  gl.GetUniformLocation(prog, gl.Str("lightSpace\x00")),
		lightDirLoc:    gl.GetUniformLocation(prog, gl.Str("lightDir\x00")),
		ambientLoc:     gl.GetUniformLocation(prog, gl.Str("ambient\x00")),
		objectColorLoc: gl.GetUniformLocation(prog, gl.Str("objectColor\x00")),
		emissiveLoc:    gl.GetUniformLocation(prog, gl.Str("emissive\x00")),
		shadowMapLoc:   gl.GetUniformLocation(prog, gl.Str("shadowMap\x00")),

		shadowLightMVPLoc: gl.GetUniformLocation(shadowProg, gl.Str("lightMVP\x00")),

		shadowMap: sm,
		gpuMeshes: make(map[uuid.UUID]*GPUMesh),
	}

	gl.UseProgram(prog)
	gl.Uniform1i(r.shadowMapLoc, 0)

	return r, nil
}

// SetViewport resizes the OpenGL viewport and stores the dimensions
// for restoring after the shadow pass.
func (r *Renderer) SetViewport(width, height int) {
	r.viewportW = int32(width)
	r.viewportH = int32(height)
	gl.Viewport(0, 0, int32(width), int32(height))
}

// BeginShadowPass binds the depth FBO and resizes the viewport to the
// shadow map.
func (r *Renderer) BeginShadowPass() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, r.shadowMap.FBO)
	gl.Viewport(0, 0, r.shadowMap.Size, r.shadowMap.Size)
	gl.Clear(gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.shadowProg)
}

// DrawDepth draws a mesh into the shadow map using the depth-only
// shader.
func (r *Renderer) DrawDepth(mesh *scene.Mesh, lightMVP math.Mat4) {
	gpu := r.ensureUploaded(mesh)
	if gpu == nil {
		return
	}
	gl.UniformMatrix4fv(r.shadowLightMVPLoc, 1, false,
		(*float32)(unsafe.Pointer(&lightMVP[0][0])))
	gl.BindVertexArray(gpu.VAO)
	gl.DrawElements(gl.TRIANGLES, gpu.IndexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// EndShadowPass restores the default framebuffer and the window
// viewport.
func (r *Renderer) EndShadowPass() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, r.viewportW, r.viewportH)
}

// BeginFrame clears the default framebuffer and sets the per-frame
// lighting uniforms. The shadow map rendered by the preceding pass is
// bound to texture unit 0.
func (r *Renderer) BeginFrame(params renderer.FrameParams) {
	br, bg, bb := params.Background.ToFloats()
	gl.ClearColor(br, bg, bb, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)

	dir := params.LightDirection.Normalize()
	gl.Uniform3f(r.lightDirLoc, dir.X, dir.Y, dir.Z)
	gl.Uniform1f(r.ambientLoc, params.Ambient)
	gl.UniformMatrix4fv(r.lightSpaceLoc, 1, false,
		(*float32)(unsafe.Pointer(&params.LightSpace[0][0])))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.shadowMap.DepthTex)
}

// DrawLit draws a mesh with shadow-mapped Lambertian shading.
func (r *Renderer) DrawLit(mesh *scene.Mesh, mvp, model math.Mat4, color core.Color) {
	r.draw(mesh, mvp, model, color, false)
}

// DrawEmissive draws a mesh at flat full color, ignoring the light.
func (r *Renderer) DrawEmissive(mesh *scene.Mesh, mvp math.Mat4, color core.Color) {
	r.draw(mesh, mvp, math.Mat4Identity(), color, true)
}

func (r *Renderer) draw(mesh *scene.Mesh, mvp, model math.Mat4, color core.Color, emissive bool) {
	gpu := r.ensureUploaded(mesh)
	if gpu == nil {
		return
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.mvpLoc, 1, false, (*float32)(unsafe.Pointer(&mvp[0][0])))
	gl.UniformMatrix4fv(r.modelLoc, 1, false, (*float32)(unsafe.Pointer(&model[0][0])))

	cr, cg, cb := color.ToFloats()
	gl.Uniform3f(r.objectColorLoc, cr, cg, cb)
	if emissive {
		gl.Uniform1i(r.emissiveLoc, 1)
	} else {
		gl.Uniform1i(r.emissiveLoc, 0)
	}

	gl.BindVertexArray(gpu.VAO)
	gl.DrawElements(gl.TRIANGLES, gpu.IndexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy frees all GPU resources.
func (r *Renderer) Destroy() {
	for id, gpu := range r.gpuMeshes {
		gl.DeleteVertexArrays(1, &gpu.VAO)
		gl.DeleteBuffers(1, &gpu.VBO)
		gl.DeleteBuffers(1, &gpu.EBO)
		delete(r.gpuMeshes, id)
	}
	if r.shadowMap != nil {
		r.shadowMap.Destroy()
		r.shadowMap = nil
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
	if r.shadowProg != 0 {
		gl.DeleteProgram(r.shadowProg)
		r.shadowProg = 0
	}
}

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %v", log)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
