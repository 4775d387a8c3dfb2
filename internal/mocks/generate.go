package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/club --output domain/club --outpkg clubmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name EntryRepository --dir ../domain/season --output domain/season --outpkg seasonmock --filename entry_repository_mock.go
