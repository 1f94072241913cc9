package opengl

// fullscreenVertSrc draws one oversized triangle from gl_VertexID; no vertex
// buffer is bound.
const fullscreenVertSrc = `
#version 410 core
out vec2 fragUV;
void main() {
    const vec2 pos[3] = vec2[3](
        vec2(-1.0, -1.0),
        vec2( 3.0, -1.0),
        vec2(-1.0,  3.0)
    );
    gl_Position = vec4(pos[gl_VertexID], 0.0, 1.0);
    fragUV      = pos[gl_VertexID] * 0.5 + 0.5;
}
` + "\x00"

// geometryVertSrc moves vertices into view space. Layout: position 0,
// color 1, normal 2.
const geometryVertSrc = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;
layout (location = 2) in vec3 aNormal;

out vec3 FragPos;
out vec3 Normal;
out vec3 Color;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main() {
    mat4 modelView = view * model;
    vec4 viewPos   = modelView * vec4(aPos, 1.0);
    FragPos = viewPos.xyz;
    Normal  = transpose(inverse(mat3(modelView))) * aNormal;
    Color   = aColor;
    gl_Position = projection * viewPos;
}
` + "\x00"

const geometryFragSrc = `
#version 410 core
layout (location = 0) out vec4 gPosition;
layout (location = 1) out vec4 gNormal;
layout (location = 2) out vec3 gAlbedo;

in vec3 FragPos;
in vec3 Normal;
in vec3 Color;

void main() {
    gPosition = vec4(FragPos, 1.0);
    gNormal   = vec4(normalize(Normal), 1.0);
    gAlbedo   = Color;
}
` + "\x00"

// ssaoFragSrc samples the kernel around each view-space fragment. Kernel
// size must match ssao.KernelSize.
const ssaoFragSrc = `
#version 410 core
in  vec2 fragUV;
out float FragColor;

uniform sampler2D gPosition; // unit 0
uniform sampler2D gNormal;   // unit 1
uniform sampler2D texNoise;  // unit 2, REPEAT

const int kernelSize = 64;
uniform vec3  samples[kernelSize];
uniform mat4  projection;
uniform float radius;
uniform float bias;
uniform vec2  noiseScale; // framebuffer size / noise tile size

void main() {
    vec3 normal = texture(gNormal, fragUV).xyz;
    if (dot(normal, normal) == 0.0) { FragColor = 1.0; return; }
    normal = normalize(normal);
    vec3 fragPos = texture(gPosition, fragUV).xyz;

    vec3 randomVec = vec3(texture(texNoise, fragUV * noiseScale).xy, 0.0);
    vec3 tangent = randomVec - normal * dot(randomVec, normal);
    if (length(tangent) < 1e-3) {
        tangent = cross(normal, abs(normal.x) < 0.9 ? vec3(1.0, 0.0, 0.0) : vec3(0.0, 1.0, 0.0));
    }
    tangent = normalize(tangent);
    vec3 bitangent = cross(normal, tangent);
    mat3 TBN = mat3(tangent, bitangent, normal);

    float occlusion = 0.0;
    for (int i = 0; i < kernelSize; ++i) {
        vec3 samplePos = fragPos + TBN * samples[i] * radius;

        vec4 offset = projection * vec4(samplePos, 1.0);
        offset.xyz /= offset.w;
        vec2 sampleUV = offset.xy * 0.5 + 0.5;

        float sampleDepth = texture(gPosition, sampleUV).z;
        float rangeCheck = smoothstep(0.0, 1.0, radius / max(abs(fragPos.z - sampleDepth), 0.0001));
        occlusion += (sampleDepth >= samplePos.z + bias ? 1.0 : 0.0) * rangeCheck;
    }
    FragColor = clamp(1.0 - occlusion / float(kernelSize), 0.0, 1.0);
}
` + "\x00"

// blurFragSrc averages a 4×4 footprint, the noise tile period.
const blurFragSrc = `
#version 410 core
in  vec2 fragUV;
out float FragColor;

uniform sampler2D ssaoInput; // unit 0

void main() {
    vec2 texelSize = 1.0 / vec2(textureSize(ssaoInput, 0));
    float result = 0.0;
    for (int x = -2; x < 2; ++x) {
        for (int y = -2; y < 2; ++y) {
            result += texture(ssaoInput, fragUV + vec2(float(x), float(y)) * texelSize).r;
        }
    }
    FragColor = result / 16.0;
}
` + "\x00"

// lightingFragSrc composites albedo, occlusion and one Blinn-Phong point
// light, all in view space.
const lightingFragSrc = `
#version 410 core
in  vec2 fragUV;
out vec4 FragColor;

uniform sampler2D gPosition; // unit 0
uniform sampler2D gNormal;   // unit 1
uniform sampler2D gAlbedo;   // unit 2
uniform sampler2D ssao;      // unit 3

struct Light {
    vec3  Position;
    vec3  Color;
    float Linear;
    float Quadratic;
};
uniform Light light;
uniform vec3  viewPos;
uniform float ambientStrength;
uniform float shininess;

void main() {
    vec3 Diffuse = texture(gAlbedo, fragUV).rgb;
    vec3 Normal  = texture(gNormal, fragUV).xyz;
    if (dot(Normal, Normal) == 0.0) { FragColor = vec4(Diffuse, 1.0); return; }
    Normal = normalize(Normal);
    vec3  FragPos          = texture(gPosition, fragUV).xyz;
    float AmbientOcclusion = texture(ssao, fragUV).r;

    vec3 ambient  = vec3(ambientStrength * Diffuse * AmbientOcclusion);
    vec3 viewDir  = normalize(viewPos - FragPos);
    vec3 lightDir = normalize(light.Position - FragPos);
    vec3 diffuse  = max(dot(Normal, lightDir), 0.0) * Diffuse * light.Color;

    vec3  halfwayDir = normalize(lightDir + viewDir);
    float spec       = pow(max(dot(Normal, halfwayDir), 0.0), shininess);
    vec3  specular   = light.Color * spec;

    float distance    = length(light.Position - FragPos);
    float attenuation = 1.0 / (1.0 + light.Linear * distance + light.Quadratic * distance * distance);

    vec3 lighting = ambient + (diffuse + specular) * attenuation;
    FragColor = vec4(clamp(lighting, 0.0, 1.0), 1.0);
}
` + "\x00"
