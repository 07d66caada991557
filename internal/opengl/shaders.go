package opengl

// ── G-buffer fill ─────────────────────────────────────────────────────────────

// gbufferVertSrc places instance gl_InstanceID on a square grid of unit
// cubes. The grid is sqrt(InstanceNumber) cubes wide, and each column bobs
// on a travelling wave driven by Time.
const gbufferVertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inUV;

uniform mat4  MVP;
uniform mat4  MV;
uniform float Time;
uniform int   InstanceNumber;

out vec2 fragUV;
out vec3 fragNormal; // view space

void main() {
    int side = max(int(sqrt(float(InstanceNumber))), 1);
    float x = float(gl_InstanceID % side);
    float z = float(gl_InstanceID / side);
    float y = -30.0 + 2.0 * sin(x * 0.15 + Time) * cos(z * 0.15 + Time * 0.5);

    vec3 pos = inPosition * 0.8 + vec3(x, y, z);

    fragUV      = inUV;
    fragNormal  = mat3(MV) * inNormal;
    gl_Position = MVP * vec4(pos, 1.0);
}
` + "\x00"

// gbufferFragSrc writes albedo plus specular mask to attachment 0 and the
// view-space normal plus specular power to attachment 1.
const gbufferFragSrc = `
#version 410 core
in vec2 fragUV;
in vec3 fragNormal;

uniform sampler2D Diffuse;   // unit 0
uniform sampler2D Specular;  // unit 1
uniform float SpecularPower;

layout(location = 0) out vec4 outColor;
layout(location = 1) out vec4 outNormal;

void main() {
    vec3  albedo = texture(Diffuse, fragUV).rgb;
    float spec   = texture(Specular, fragUV).r;
    outColor  = vec4(albedo, spec);
    outNormal = vec4(normalize(fragNormal), SpecularPower);
}
` + "\x00"

// ── Light composite ───────────────────────────────────────────────────────────

// quadVertSrc passes a clip-space quad straight through.
const quadVertSrc = `
#version 410 core
layout(location = 0) in vec2 inPosition;
void main() {
    gl_Position = vec4(inPosition, 0.0, 1.0);
}
` + "\x00"

// lightCommonSrc is shared by the three light programs: G-buffer samplers,
// the Camera block and surface reconstruction from depth.
const lightCommonSrc = `
#version 410 core
out vec4 outColor;

uniform sampler2D ColorBuffer;   // unit 0
uniform sampler2D NormalBuffer;  // unit 1
uniform sampler2D DepthBuffer;   // unit 2

layout(std140) uniform Camera {
    vec3 Position;
    mat4 ScreenToWorld;
    mat4 ViewToWorld;
} camera;

struct Surface {
    vec3  position;
    vec3  normal;
    vec3  albedo;
    float specular;
    float power;
};

bool readSurface(out Surface s) {
    vec2  uv    = gl_FragCoord.xy / vec2(textureSize(DepthBuffer, 0));
    float depth = texture(DepthBuffer, uv).r;
    if (depth >= 1.0) {
        return false;
    }
    vec4 wp = camera.ScreenToWorld * vec4(vec3(uv, depth) * 2.0 - 1.0, 1.0);
    vec4 c  = texture(ColorBuffer, uv);
    vec4 n  = texture(NormalBuffer, uv);

    s.position = wp.xyz / wp.w;
    s.normal   = normalize((camera.ViewToWorld * vec4(n.xyz, 0.0)).xyz);
    s.albedo   = c.rgb;
    s.specular = c.a;
    s.power    = n.a;
    return true;
}

vec3 blinnPhong(Surface s, vec3 l, vec3 color, float intensity) {
    vec3  v    = normalize(camera.Position - s.position);
    vec3  h    = normalize(l + v);
    float ndl  = max(dot(s.normal, l), 0.0);
    float spec = pow(max(dot(s.normal, h), 0.0), s.power) * s.specular;
    return color * intensity * (s.albedo * ndl + vec3(spec));
}
`

const lightBlockSrc = `
layout(std140) uniform Light {
    vec3  Position;
    vec3  Color;
    float Intensity;
    float Attenuation;
} light;
`

const spotLightBlockSrc = `
layout(std140) uniform Light {
    vec3  Position;
    vec3  Color;
    float Intensity;
    float Attenuation;
    vec3  Direction;
    float Angle;
    float Falloff;
} light;
`

const pointLightFragSrc = lightCommonSrc + lightBlockSrc + `
void main() {
    Surface s;
    if (!readSurface(s)) {
        discard;
    }
    vec3  toLight = light.Position - s.position;
    float d       = length(toLight);
    float att     = 1.0 / (1.0 + light.Attenuation * d * d * 0.01);
    outColor = vec4(blinnPhong(s, toLight / d, light.Color, light.Intensity) * att, 1.0);
}
` + "\x00"

// directionalLightFragSrc reads the light's direction of travel from Position.
const directionalLightFragSrc = lightCommonSrc + lightBlockSrc + `
void main() {
    Surface s;
    if (!readSurface(s)) {
        discard;
    }
    vec3 l = normalize(-light.Position);
    outColor = vec4(blinnPhong(s, l, light.Color, light.Intensity), 1.0);
}
` + "\x00"

// spotLightFragSrc lights fully inside Angle and fades out towards Falloff,
// both full cone apertures in degrees.
const spotLightFragSrc = lightCommonSrc + spotLightBlockSrc + `
void main() {
    Surface s;
    if (!readSurface(s)) {
        discard;
    }
    vec3  toLight = light.Position - s.position;
    float d       = length(toLight);
    vec3  l       = toLight / d;

    float cosTheta = dot(-l, light.Direction);
    float inner    = cos(radians(light.Angle * 0.5));
    float outer    = cos(radians(light.Falloff * 0.5));
    float cone     = smoothstep(outer, inner, cosTheta);
    float att      = 1.0 / (1.0 + light.Attenuation * d * d * 0.01);

    outColor = vec4(blinnPhong(s, l, light.Color, light.Intensity) * att * cone, 1.0);
}
` + "\x00"
