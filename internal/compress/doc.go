// Package compress wraps the LZ4 and Zstandard block codecs used for snapshot
// payloads. Zstandard encoders and decoders are pooled.
package compress
