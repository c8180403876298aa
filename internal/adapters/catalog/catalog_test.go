package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/irosadie/fifa-ranking/internal/adapters/catalog"
	"github.com/irosadie/fifa-ranking/internal/adapters/provider"
	"github.com/irosadie/fifa-ranking/internal/domain/model"
	"github.com/irosadie/fifa-ranking/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	_ = logger.Init()
}

type fakeProvider struct {
	countries []provider.Country
	err       error
	calls     int
}

func (f *fakeProvider) History(ctx context.Context, code, gender, edition string) ([]model.Record, error) {
	return nil, errors.New("not used")
}

func (f *fakeProvider) Countries(ctx context.Context) ([]provider.Country, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.countries, nil
}

func TestCountries(t *testing.T) {
	Convey("Given a provider with two countries", t, func() {
		fake := &fakeProvider{countries: []provider.Country{
			{Code: "BRA", Name: "Brazil"},
			{Code: "USA", Name: "United States"},
		}}
		svc := catalog.New(fake, catalog.WithTTL(time.Minute))

		Convey("The first call hits the provider", func() {
			countries, err := svc.Countries(context.Background())
			So(err, ShouldBeNil)
			So(countries, ShouldHaveLength, 2)
			So(fake.calls, ShouldEqual, 1)
		})

		Convey("Repeated calls are served from cache", func() {
			_, _ = svc.Countries(context.Background())
			_, _ = svc.Countries(context.Background())
			So(fake.calls, ShouldEqual, 1)
		})

		Convey("Names indexes codes to display names", func() {
			names := svc.Names(context.Background())
			So(names["BRA"], ShouldEqual, "Brazil")
			So(names["USA"], ShouldEqual, "United States")
		})
	})

	Convey("Given a failing provider", t, func() {
		fake := &fakeProvider{err: errors.New("boom")}
		svc := catalog.New(fake)

		Convey("Countries surfaces the error", func() {
			_, err := svc.Countries(context.Background())
			So(err, ShouldNotBeNil)
		})

		Convey("Names degrades to an empty index", func() {
			So(svc.Names(context.Background()), ShouldBeEmpty)
		})
	})
}
