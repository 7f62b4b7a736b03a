// Package config loads the optional cubeconundrum configuration file.
//
// The file names the input log, the identifier numbering mode, and the
// constraint set used by the possible-games sum. Two formats are accepted,
// chosen by file extension:
//
//   - .yaml / .yml, decoded strictly with gopkg.in/yaml.v3
//   - .json / .jsonc, with comments and trailing commas stripped by
//     github.com/tidwall/jsonc before strict encoding/json decoding
//
// Unknown keys are rejected in both formats so a typo such as "gren" fails
// loudly instead of silently falling back to the default limit.
package config
