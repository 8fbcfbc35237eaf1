// SPDX-License-Identifier: EPL-2.0

package device

import (
	"fmt"

	"github.com/gen2brain/malgo"
)

// DefaultDevice selects the system default device for a direction.
const DefaultDevice = -1

// Device describes one audio endpoint as reported by the native
// backend. A device that supports both directions has both channel
// counts set; pure capture or pure playback devices have the other
// direction at zero.
type Device struct {
	// Index identifies the device within the snapshot it came from.
	Index int
	// Name is the backend-reported device name.
	Name string
	// MaxInputChannels is the highest capture channel count reported.
	MaxInputChannels int
	// MaxOutputChannels is the highest playback channel count reported.
	MaxOutputChannels int
	// DefaultInput marks the system default capture device.
	DefaultInput bool
	// DefaultOutput marks the system default playback device.
	DefaultOutput bool

	captureID  *malgo.DeviceID
	playbackID *malgo.DeviceID
}

// endpoint is the backend-neutral form of one direction of a device,
// extracted from malgo so the merge logic stays testable without a
// native context.
type endpoint struct {
	id        malgo.DeviceID
	name      string
	channels  int
	isDefault bool
}

// Enumerate snapshots the devices the native backend reports, merging
// the capture and playback lists by name. The snapshot is read-only:
// indices are only meaningful against the same snapshot.
func Enumerate() ([]Device, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("initializing audio context: %w", err)
	}
	defer func() {
		_ = ctx.Uninit()
		ctx.Free()
	}()

	return enumerate(ctx.Context)
}

// enumerate lists the devices visible through an already-initialized
// backend context.
func enumerate(ctx malgo.Context) ([]Device, error) {
	captureInfos, err := ctx.Devices(malgo.Capture)
	if err != nil {
		return nil, fmt.Errorf("listing capture devices: %w", err)
	}

	playbackInfos, err := ctx.Devices(malgo.Playback)
	if err != nil {
		return nil, fmt.Errorf("listing playback devices: %w", err)
	}

	return mergeEndpoints(toEndpoints(captureInfos), toEndpoints(playbackInfos)), nil
}

func toEndpoints(infos []malgo.DeviceInfo) []endpoint {
	eps := make([]endpoint, 0, len(infos))
	for _, info := range infos {
		eps = append(eps, endpoint{
			id:        info.ID,
			name:      info.Name(),
			channels:  maxChannels(info),
			isDefault: info.IsDefault != 0,
		})
	}
	return eps
}

// maxChannels picks the widest channel count among the reported
// formats. Some backends report no formats at all; assume stereo then
// and let the driver reject an open it cannot serve.
func maxChannels(info malgo.DeviceInfo) int {
	channels := 0
	for i := 0; i < int(info.FormatCount) && i < len(info.Formats); i++ {
		if c := int(info.Formats[i].Channels); c > channels {
			channels = c
		}
	}
	if channels == 0 {
		channels = 2
	}
	return channels
}

// mergeEndpoints joins the per-direction lists into one device list.
// Endpoints sharing a name describe the same physical device; capture
// order first, playback-only devices appended after.
func mergeEndpoints(capture, playback []endpoint) []Device {
	devices := make([]Device, 0, len(capture)+len(playback))
	byName := make(map[string]int, len(capture))

	for _, ep := range capture {
		id := ep.id
		devices = append(devices, Device{
			Index:            len(devices),
			Name:             ep.name,
			MaxInputChannels: ep.channels,
			DefaultInput:     ep.isDefault,
			captureID:        &id,
		})
		byName[ep.name] = len(devices) - 1
	}

	for _, ep := range playback {
		id := ep.id
		if i, ok := byName[ep.name]; ok {
			devices[i].MaxOutputChannels = ep.channels
			devices[i].DefaultOutput = ep.isDefault
			devices[i].playbackID = &id
			continue
		}
		devices = append(devices, Device{
			Index:             len(devices),
			Name:              ep.name,
			MaxOutputChannels: ep.channels,
			DefaultOutput:     ep.isDefault,
			playbackID:        &id,
		})
	}

	return devices
}

// selectDevices resolves the configured input and output indices
// against a device snapshot and validates their capabilities.
func selectDevices(cfg Config, devices []Device) (input, output Device, err error) {
	input, err = pickDevice(cfg.Input, devices, func(d Device) (int, bool) {
		return d.MaxInputChannels, d.DefaultInput
	}, ErrInputUnavailable)
	if err != nil {
		return Device{}, Device{}, err
	}

	output, err = pickDevice(cfg.Output, devices, func(d Device) (int, bool) {
		return d.MaxOutputChannels, d.DefaultOutput
	}, ErrOutputUnavailable)
	if err != nil {
		return Device{}, Device{}, err
	}

	if input.MaxInputChannels == 0 {
		return Device{}, Device{}, fmt.Errorf("%w: %q", ErrNoInputChannels, input.Name)
	}
	if output.MaxOutputChannels == 0 {
		return Device{}, Device{}, fmt.Errorf("%w: %q", ErrNoOutputChannels, output.Name)
	}

	if cfg.Channels > input.MaxInputChannels {
		return Device{}, Device{}, fmt.Errorf("%w: %q supports %d input channels, need %d",
			ErrChannelsUnsupported, input.Name, input.MaxInputChannels, cfg.Channels)
	}
	if cfg.Channels > output.MaxOutputChannels {
		return Device{}, Device{}, fmt.Errorf("%w: %q supports %d output channels, need %d",
			ErrChannelsUnsupported, output.Name, output.MaxOutputChannels, cfg.Channels)
	}

	return input, output, nil
}

func pickDevice(index int, devices []Device, caps func(Device) (int, bool), unavailable error) (Device, error) {
	if index == DefaultDevice {
		var fallback *Device
		for i := range devices {
			channels, isDefault := caps(devices[i])
			if channels == 0 {
				continue
			}
			if isDefault {
				return devices[i], nil
			}
			if fallback == nil {
				fallback = &devices[i]
			}
		}
		// No flagged default; first capable device stands in.
		if fallback != nil {
			return *fallback, nil
		}
		return Device{}, fmt.Errorf("%w: no capable device", unavailable)
	}

	if index < 0 || index >= len(devices) {
		return Device{}, fmt.Errorf("%w: index %d of %d devices", unavailable, index, len(devices))
	}
	return devices[index], nil
}
