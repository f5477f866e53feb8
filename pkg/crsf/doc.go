// Package crsf decodes and encodes frames of the Crossfire (CRSF) serial
// protocol spoken between RC receivers, flight controllers and ground stations.
package crsf

// Every frame shares one layout:
//
//	[address][length][type][payload ...][crc]
//
// length counts the bytes after itself (type, payload and crc), so a frame is
// always length+2 bytes and never longer than MaxFrameSize. The crc is CRC-8
// with polynomial 0xD5 over type and payload.
//
// Extended frames carry destination and source addresses at the start of the
// payload:
//
//	[address][length][type][destination][source][payload ...][crc]
//
// Decode classifies validated bytes into one of the concrete frame types, the
// builders in this package (ChannelsConfig, DevicePingConfig, ...) produce
// byte-exact frames for transmission.
