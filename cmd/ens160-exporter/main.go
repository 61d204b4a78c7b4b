package main

import (
	"context"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-sensors/sciosenseens160"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

var (
	listenAddr = flag.String("listen", ":9822", "OpenMetrics Exporter Listening Address")
	busName    = flag.String("bus", "", "periph I2C bus name (empty opens the first bus)")
	deviceAddr = flag.Uint("addr", uint(sciosenseens160.DefaultAddress), "ENS160 I2C address")
	driver     = flag.String("driver", "periph", "I2C driver: periph or d2r2")
	d2r2BusNum = flag.Int("d2r2-bus", 1, "I2C bus number used by the d2r2 driver")
	interval   = flag.Duration("interval", sciosenseens160.DefaultMeasurementInterval, "time interval between sensor reads")
	suspending = flag.Bool("suspending", false, "run bus transactions in the suspending execution model")
	logLevel   = flag.String("loglevel", "INFO", "Log Level")
)

type busCloser interface {
	sciosenseens160.Bus
	io.Closer
}

func openBus() (busCloser, error) {
	switch *driver {
	case "periph":
		if _, err := host.Init(); err != nil {
			return nil, errors.Wrap(err, "failed to initialize host")
		}
		bus, err := i2creg.Open(*busName)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open i2c bus %q", *busName)
		}
		return &periphBusCloser{PeriphBus: sciosenseens160.NewPeriphBus(bus), Closer: bus}, nil
	case "d2r2":
		bus, err := openD2R2Bus(*d2r2BusNum)
		if err != nil {
			return nil, err
		}
		return bus, nil
	default:
		return nil, errors.Errorf("unknown driver %q", *driver)
	}
}

type periphBusCloser struct {
	*sciosenseens160.PeriphBus
	io.Closer
}

func deviceOptions() []*sciosenseens160.DeviceOption {
	if *suspending {
		return []*sciosenseens160.DeviceOption{sciosenseens160.WithSuspending()}
	}
	return []*sciosenseens160.DeviceOption{sciosenseens160.WithBlocking()}
}

func describeDevice(ctx context.Context, bus sciosenseens160.Bus, address uint16) error {
	device, err := sciosenseens160.NewDevice(bus, address, deviceOptions()...)
	if err != nil {
		return errors.Wrap(err, "failed to configure device")
	}

	err = device.Idle(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to enter idle mode")
	}

	partID, err := device.PartID(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read part id")
	}

	version, err := device.FirmwareVersion(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read firmware version")
	}

	err = device.ClearCommand(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to clear command")
	}

	log.WithFields(log.Fields{
		"address":  addressLabel(address),
		"part_id":  partID,
		"firmware": version.String(),
		"model":    device.ExecutionModel().String(),
	}).Info("ENS160 found")
	return nil
}

func run(ctx context.Context) (err error) {
	address := uint16(*deviceAddr)

	bus, err := openBus()
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, bus.Close())
	}()

	err = describeDevice(ctx, bus, address)
	if err != nil {
		return err
	}

	sensor := sciosenseens160.NewSensor(
		sciosenseens160.NewBusPortFactory(bus, address),
		sciosenseens160.WithAddress(address),
		sciosenseens160.WithMeasurementInterval(*interval),
		sciosenseens160.WithDeviceOptions(deviceOptions()...))

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(
		prometheus.DefaultGatherer,
		promhttp.HandlerOpts{
			EnableOpenMetrics: true,
		},
	))
	server := &http.Server{Addr: *listenAddr, Handler: mux}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return sensor.Run(groupCtx)
	})
	group.Go(func() error {
		for concentration := range sensor.Concentrations() {
			log.WithFields(log.Fields{
				"gas": concentration.Gas,
				"ppm": concentration.Amount.PartsPerMillion(),
			}).Debug("concentration")
			observeConcentration(address, concentration.Gas, concentration.Amount)
		}
		return nil
	})
	group.Go(func() error {
		for index := range sensor.AirQualityIndices() {
			log.WithField("aqi", index.String()).Debug("air quality index")
			observeAirQualityIndex(address, index)
		}
		return nil
	})
	group.Go(func() error {
		log.Infof("Listen [%s]", *listenAddr)
		err := server.ListenAndServe()
		if err == http.ErrServerClosed {
			return nil
		}
		return errors.Wrap(err, "failed to serve metrics")
	})
	group.Go(func() error {
		<-groupCtx.Done()
		return server.Shutdown(context.Background())
	})

	err = group.Wait()
	if ctx.Err() != nil && errors.Cause(err) == ctx.Err() {
		return nil
	}
	return err
}

func main() {
	flag.Parse()

	if err := initLogger(*logLevel); err != nil {
		log.WithError(err).Fatal("invalid log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.WithError(err).Fatal("exporter stopped")
	}
	log.Info("exporter stopped")
}
