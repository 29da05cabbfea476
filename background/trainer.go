package background

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/civictwin/civictwin-api/schema"
)

const (
	trainingWindow     = int64(5000)
	minTrainingSamples = 50

	metricCount = 5
)

// TrainStressModel refits the stress weight coefficients against the stored
// snapshot history by ordinary least squares and saves the result. The
// serving path is untouched until it reloads coefficients at start.
func (m *BackgroundManager) TrainStressModel() error {
	snapshots, err := m.store.ListSnapshots(trainingWindow)
	if err != nil {
		return err
	}

	if len(snapshots) < minTrainingSamples {
		log.WithField("prefix", "trainer").
			Infof("only %d snapshots, skip training", len(snapshots))
		return nil
	}

	coefficient, err := fitCoefficient(snapshots)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prefix":      "trainer",
		"samples":     len(snapshots),
		"coefficient": fmt.Sprintf("%+v", *coefficient),
	}).Info("trained stress coefficient")

	return m.store.SaveCoefficient(schema.CoefficientRecord{
		Coefficient: *coefficient,
		Samples:     len(snapshots),
		Timestamp:   time.Now().Unix(),
	})
}

// fitCoefficient solves the normal equations of a least-squares fit of
// civic_stress against the five metrics, without intercept.
func fitCoefficient(snapshots []schema.Snapshot) (*schema.StressCoefficient, error) {
	xtx := mat.NewDense(metricCount, metricCount, nil)
	xty := mat.NewVecDense(metricCount, nil)

	for _, s := range snapshots {
		x := []float64{s.Traffic, s.Pollution, s.PowerUsage, s.WaterUse, s.Complaints}
		for i := 0; i < metricCount; i++ {
			for j := 0; j < metricCount; j++ {
				xtx.Set(i, j, xtx.At(i, j)+x[i]*x[j])
			}
			xty.SetVec(i, xty.AtVec(i)+x[i]*s.CivicStress)
		}
	}

	var w mat.VecDense
	if err := w.SolveVec(xtx, xty); err != nil {
		return nil, fmt.Errorf("snapshot history is degenerate, cannot fit weights: %s", err)
	}

	return &schema.StressCoefficient{
		Traffic:    w.AtVec(0),
		Pollution:  w.AtVec(1),
		PowerUsage: w.AtVec(2),
		WaterUse:   w.AtVec(3),
		Complaints: w.AtVec(4),
	}, nil
}
