package geoinfo

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"
)

const (
	logPrefix      = "geoinfo"
	defaultTimeout = 5 * time.Second
)

var errNoResult = fmt.Errorf("no geocoding result")

// GeoInfo - interface to reverse geocode a coordinate into a place label
type GeoInfo interface {
	Label(lat, lng float64) (string, error)
}

type geoInfo struct {
	client *maps.Client
}

func (g geoInfo) Label(lat, lng float64) (string, error) {
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"lat":    lat,
		"lng":    lng,
	}).Info("query geo info")

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{LatLng: &maps.LatLng{
		Lat: lat,
		Lng: lng,
	}})
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", errNoResult
	}

	return results[0].FormattedAddress, nil
}

// New - new GeoInfo interface
func New(apiKey string) (GeoInfo, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return &geoInfo{
		client: client,
	}, nil
}
