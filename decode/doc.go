// Package decode provides the file decoders used by the loader.
//
// A decoder turns raw file bytes into a value; the loader requires that value
// to be an object. JSON is the default. YAML, TOML and dotenv decoders are
// provided, Viper covers any other format viper understands, and Sealed
// decrypts a file before handing it to another decoder.
//
//	b.AddFile("config.yaml", decode.YAML)
//	b.AddFile("secrets.json.sealed", decode.Sealed(cipher, decode.JSON))
package decode
