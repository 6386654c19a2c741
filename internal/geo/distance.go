// Package geo computes great-circle distances, both in-process and as a SQL
// expression the repository pushes into its WHERE clause.
//
// Latitudes and longitudes are not range checked. Values outside [-90, 90] and
// [-180, 180] produce a number, but not a meaningful distance.
package geo

import (
	"fmt"
	"math"
)

// EarthRadiusKm is the mean Earth radius used for every distance.
const EarthRadiusKm = 6371.0

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// GreatCircleDistanceKm returns the distance in kilometres between two points
// using the spherical law of cosines, matching DistanceSQL exactly.
func GreatCircleDistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	cosAngle := math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Cos(radians(lon2)-radians(lon1)) +
		math.Sin(radians(lat1))*math.Sin(radians(lat2))

	// rounding can push identical points just past 1, where acos is NaN
	cosAngle = math.Max(-1, math.Min(1, cosAngle))

	return EarthRadiusKm * math.Acos(cosAngle)
}

// DistanceSQL renders the same formula as a PostgreSQL expression. latCol and
// lonCol name the stored coordinate columns, latParam and lonParam the query
// point placeholders (e.g. "$1", "$2").
func DistanceSQL(latCol, lonCol, latParam, lonParam string) string {
	return fmt.Sprintf(
		"(%[5]g * acos(LEAST(1.0, GREATEST(-1.0, "+
			"cos(radians(%[1]s)) * cos(radians(%[3]s)) * cos(radians(%[4]s) - radians(%[2]s)) + "+
			"sin(radians(%[1]s)) * sin(radians(%[3]s))))))",
		latCol, lonCol, latParam, lonParam, EarthRadiusKm,
	)
}
