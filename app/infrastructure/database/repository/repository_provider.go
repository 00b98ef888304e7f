package repository

import (
	"github.com/google/wire"
	"github.com/murayeeto/HornetHelper/app/infrastructure/database/repository/profilerepo"
	"github.com/murayeeto/HornetHelper/app/infrastructure/database/repository/transaction"
)

var RepositoryProvider = wire.NewSet(
	profilerepo.NewProfileGormRepository,
	transaction.NewDatabase,
)
