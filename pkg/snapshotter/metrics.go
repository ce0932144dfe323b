// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package snapshotter

import (
	"log/slog"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	apperrors "github.com/NVIDIA/gpustat/pkg/errors"
	"github.com/NVIDIA/gpustat/pkg/version"
)

const metricsNamespace = "gpustat"

var deviceLabels = []string{"gpu", "name"}

// textfileMetrics holds the gauges exported for one report.
type textfileMetrics struct {
	temperature   *prometheus.GaugeVec
	utilization   *prometheus.GaugeVec
	memoryUsed    *prometheus.GaugeVec
	memoryTotal   *prometheus.GaugeVec
	powerUsage    *prometheus.GaugeVec
	powerLimit    *prometheus.GaugeVec
	fanSpeed      *prometheus.GaugeVec
	encoder       *prometheus.GaugeVec
	decoder       *prometheus.GaugeVec
	processMemory *prometheus.GaugeVec
	driver        *prometheus.GaugeVec
	devices       prometheus.Gauge
	duration      prometheus.Gauge
}

func newGaugeVec(name, help string, labels []string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      name,
		Help:      help,
	}, labels)
}

func newTextfileMetrics(reg prometheus.Registerer) *textfileMetrics {
	m := &textfileMetrics{
		temperature: newGaugeVec("temperature_celsius", "GPU core temperature", deviceLabels),
		utilization: newGaugeVec("utilization_percent", "GPU utilization", deviceLabels),
		memoryUsed:  newGaugeVec("memory_used_bytes", "Used framebuffer memory", deviceLabels),
		memoryTotal: newGaugeVec("memory_total_bytes", "Total framebuffer memory", deviceLabels),
		powerUsage:  newGaugeVec("power_usage_watts", "Current power draw", deviceLabels),
		powerLimit:  newGaugeVec("power_limit_watts", "Power management limit", deviceLabels),
		fanSpeed:    newGaugeVec("fan_speed_percent", "Speed of fan 0", deviceLabels),
		encoder:     newGaugeVec("encoder_utilization_percent", "Encoder utilization", deviceLabels),
		decoder:     newGaugeVec("decoder_utilization_percent", "Decoder utilization", deviceLabels),
		processMemory: newGaugeVec("process_memory_used_bytes", "GPU memory used by a compute process",
			[]string{"gpu", "pid", "user", "command"}),
		driver: newGaugeVec("driver_info", "NVIDIA driver version, always 1",
			[]string{"version", "major"}),
		devices: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "devices",
			Help:      "Number of devices in the report",
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "collection_duration_seconds",
			Help:      "Time taken to collect the report",
		}),
	}

	reg.MustRegister(
		m.temperature, m.utilization, m.memoryUsed, m.memoryTotal,
		m.powerUsage, m.powerLimit, m.fanSpeed, m.encoder, m.decoder,
		m.processMemory, m.driver, m.devices, m.duration,
	)
	return m
}

func (m *textfileMetrics) observe(rep *Report) {
	m.devices.Set(float64(len(rep.Devices)))
	m.duration.Set(rep.Duration.Seconds())

	if rep.DriverVersion != "" {
		major := ""
		if v, err := version.ParseVersion(rep.DriverVersion); err == nil {
			major = strconv.Itoa(v.Major)
		} else {
			slog.Debug("unrecognized driver version", slog.String("version", rep.DriverVersion), slog.String("error", err.Error()))
		}
		m.driver.WithLabelValues(rep.DriverVersion, major).Set(1)
	}

	for _, d := range rep.Devices {
		idx := strconv.Itoa(d.Index)
		m.temperature.WithLabelValues(idx, d.Name).Set(float64(d.Temperature))
		m.utilization.WithLabelValues(idx, d.Name).Set(float64(d.Utilization))
		m.memoryUsed.WithLabelValues(idx, d.Name).Set(float64(d.MemoryUsed))
		m.memoryTotal.WithLabelValues(idx, d.Name).Set(float64(d.MemoryTotal))
		m.powerUsage.WithLabelValues(idx, d.Name).Set(float64(d.PowerUsage) / 1000)
		m.powerLimit.WithLabelValues(idx, d.Name).Set(float64(d.PowerLimit) / 1000)
		if d.FanSpeed != nil {
			m.fanSpeed.WithLabelValues(idx, d.Name).Set(float64(*d.FanSpeed))
		}
		if d.Encoder != nil {
			m.encoder.WithLabelValues(idx, d.Name).Set(float64(*d.Encoder))
		}
		if d.Decoder != nil {
			m.decoder.WithLabelValues(idx, d.Name).Set(float64(*d.Decoder))
		}
		for _, p := range d.Processes {
			if p.UsedMemory == nil {
				continue
			}
			m.processMemory.WithLabelValues(idx, strconv.FormatUint(uint64(p.PID), 10), p.User, p.Name).
				Set(float64(*p.UsedMemory))
		}
	}
}

// WriteTextfile writes rep in the Prometheus text exposition format, for the
// node_exporter textfile collector. The file is replaced atomically.
func WriteTextfile(path string, rep *Report) error {
	reg := prometheus.NewRegistry()
	newTextfileMetrics(reg).observe(rep)

	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return apperrors.WrapWithContext(apperrors.ErrCodeIO, "failed to write metrics textfile", err,
			map[string]any{"path": path})
	}
	return nil
}
