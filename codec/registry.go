// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package codec

import (
	"fmt"
	"strings"
	"sync"
)

// Registry holds the registered encoders and decoders keyed by codec type,
// plus the file-extension associations used by the route-file loader.
type Registry struct {
	mu         sync.RWMutex
	encoders   map[Type]Encoder
	decoders   map[Type]Decoder
	extensions map[string]Type
}

var registry = &Registry{
	encoders:   make(map[Type]Encoder),
	decoders:   make(map[Type]Decoder),
	extensions: make(map[string]Type),
}

// RegisterEncoder registers an encoder for the given type. The encoder can
// be retrieved later with GetEncoder.
func RegisterEncoder(name Type, encoder Encoder) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.encoders[name] = encoder
}

// RegisterDecoder registers a decoder for the given type. The decoder can
// be retrieved later with GetDecoder.
func RegisterDecoder(name Type, decoder Decoder) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.decoders[name] = decoder
}

// RegisterExtension associates a file extension (with or without the
// leading dot, case-insensitive) with a codec type for TypeForExtension.
func RegisterExtension(ext string, name Type) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.extensions[normalizeExt(ext)] = name
}

// GetEncoder retrieves the registered encoder for the given type. If no
// encoder is registered for the given type, an error is returned.
func GetEncoder(name Type) (Encoder, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	encoder, exists := registry.encoders[name]
	if !exists {
		return nil, fmt.Errorf("encoder not found for type: %s", name)
	}

	return encoder, nil
}

// GetDecoder retrieves the registered decoder for the given type. If no
// decoder is registered for the given type, an error is returned.
func GetDecoder(name Type) (Decoder, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	decoder, exists := registry.decoders[name]
	if !exists {
		return nil, fmt.Errorf("decoder not found for type: %s", name)
	}

	return decoder, nil
}

// TypeForExtension resolves a file extension to its registered codec type.
// If the extension is not associated with any codec, an error is returned.
func TypeForExtension(ext string) (Type, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	name, exists := registry.extensions[normalizeExt(ext)]
	if !exists {
		return "", fmt.Errorf("no codec registered for extension: %s", ext)
	}

	return name, nil
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
